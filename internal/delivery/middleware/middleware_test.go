package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "client id kept", incoming: "abc-123", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
			}
		})
	}
}

func TestLoggerMiddleware_LogsPrincipal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Handle(func(c echo.Context) error {
		deliverycontext.SetPrincipal(c, &entity.User{ID: 9})

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "HTTP Request")
	assert.Contains(t, out, "user_id=9")
	assert.Contains(t, out, "uri=/api/auth/me")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return nil })(c))
	assert.Empty(t, buf.String())
}
