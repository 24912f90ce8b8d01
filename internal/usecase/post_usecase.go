package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// PostInput carries the editable fields of a post.
type PostInput struct {
	Title   string
	Content string
}

// PostUsecase defines post operations. Mutations take the principal explicitly.
type PostUsecase interface {
	Create(ctx context.Context, principal *entity.User, input PostInput) (*entity.Post, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, page, pageSize int) (*entity.PostPage, error)
	Update(ctx context.Context, principal *entity.User, id int64, input PostInput) (*entity.Post, error)
	Delete(ctx context.Context, principal *entity.User, id int64) error
}
