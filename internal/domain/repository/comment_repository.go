package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID returns the comment with its author loaded.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// Update saves content and updated_at of an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	Delete(ctx context.Context, id int64) error

	// DeleteByPost removes every comment attached to postID.
	DeleteByPost(ctx context.Context, postID int64) error

	// ListByPost returns the comments of a post oldest first, with authors loaded.
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
}
