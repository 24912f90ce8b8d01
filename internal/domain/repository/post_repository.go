package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is returned when a post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post with its author loaded.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// Update saves title, content and updated_at of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	Delete(ctx context.Context, id int64) error

	// List returns posts newest first, with authors loaded.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	Count(ctx context.Context) (int64, error)

	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
