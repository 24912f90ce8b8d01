package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Database)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLitePath)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)

	require.NotNil(t, cfg.JWT)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL())

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	require.NotNil(t, cfg.Cookie)
	assert.Equal(t, "access_token", cfg.Cookie.Name)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)

	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)

	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.PubSub)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Empty(t, cfg.SecretKey.Access)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Database:   &DatabaseConfig{Driver: DriverPostgres},
		JWT:        &JWTConfig{Algorithm: "HS512", ExpireMinutes: 30},
		Auth:       &AuthConfig{BcryptCost: 4},
		Cookie:     &CookieConfig{Name: "session", SameSite: "strict"},
		Pagination: &PaginationConfig{DefaultPageSize: 80, MaxPageSize: 100},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Empty(t, cfg.Database.SQLitePath)
	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL())
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "session", cfg.Cookie.Name)
	assert.Equal(t, "strict", cfg.Cookie.SameSite)
	assert.Equal(t, 80, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
}

func TestApplyDefaults_ClampsDefaultPageSize(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultPageSize: 40, MaxPageSize: 10}}
	cfg.ApplyDefaults()

	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
}
