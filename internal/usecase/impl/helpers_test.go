package impl

import (
	"io"
	"log/slog"

	"blog/config"
	"blog/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxPageSize int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultPageSize: 10,
			MaxPageSize:     maxPageSize,
		},
	}
}

func newTestUser(id int64, username string) *entity.User {
	return &entity.User{ID: id, Username: username, Email: username + "@example.com"}
}
