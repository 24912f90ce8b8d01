package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// CommentUsecase defines comment operations. Mutations take the principal explicitly.
type CommentUsecase interface {
	Create(ctx context.Context, principal *entity.User, postID int64, content string) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
	Update(ctx context.Context, principal *entity.User, id int64, content string) (*entity.Comment, error)
	Delete(ctx context.Context, principal *entity.User, id int64) error
}
