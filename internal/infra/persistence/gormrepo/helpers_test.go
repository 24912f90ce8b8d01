package gormrepo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/infra/persistence/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
	}
	cfg.ApplyDefaults()

	db, err := database.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *entity.User, title string) *entity.Post {
	t.Helper()

	post := &entity.Post{Title: title, Content: "content of " + title, AuthorID: author.ID}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))

	return post
}
