package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/policy"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager   repository.TransactionManager
	postRepo    repository.PostRepository
	publisher   service.EventPublisher
	maxPageSize int
	logger      *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	maxPageSize := 0
	if params.Config != nil && params.Config.Pagination != nil {
		maxPageSize = params.Config.Pagination.MaxPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = 50
	}

	return &postService{
		txManager:   params.TxManager,
		postRepo:    params.PostRepo,
		publisher:   params.Publisher,
		maxPageSize: maxPageSize,
		logger:      params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a post owned by principal.
func (srv *postService) Create(ctx context.Context, principal *entity.User, input usecase.PostInput) (*entity.Post, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	title, content, err := normalizePostInput(input)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: principal.ID,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to create post")
	}
	post.Author = principal

	srv.log(ctx).Info("Post created", slog.Int64("postID", post.ID), slog.Int64("authorID", principal.ID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:    service.EventPostCreated,
		PostID:  post.ID,
		ActorID: principal.ID,
	})

	return post, nil
}

// Get returns one post with its author.
func (srv *postService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// List returns one page of posts, newest first. The count and the page are
// read in the same transaction so total and items agree.
func (srv *postService) List(ctx context.Context, page, pageSize int) (*entity.PostPage, error) {
	if page < 1 {
		return nil, domainerrors.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > srv.maxPageSize {
		return nil, domainerrors.ErrInvalidPageSize.WithMessage(
			fmt.Sprintf("Page size must be between 1 and %d", srv.maxPageSize),
		)
	}

	result := &entity.PostPage{Page: page, PageSize: pageSize}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		total, err := postRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count posts")
		}

		result.Total = total

		// A page whose offset does not fit in an int is past the end of any store.
		offset, ok := pageOffset(page, pageSize)
		if !ok {
			return nil
		}

		items, err := postRepo.List(ctx, offset, pageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}

		result.Items = items

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list posts transaction")
	}

	result.TotalPages = totalPages(result.Total, pageSize)
	if result.Items == nil {
		result.Items = []*entity.Post{}
	}

	return result, nil
}

// Update replaces title and content. Only the author may update.
func (srv *postService) Update(ctx context.Context, principal *entity.User, id int64, input usecase.PostInput) (*entity.Post, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to find post")
		}

		if err := policy.Authorize(post, principal, policy.ActionUpdate); err != nil {
			return err
		}

		title, content, err := normalizePostInput(input)
		if err != nil {
			return err
		}

		post.Title = title
		post.Content = content
		if err := postRepo.Update(ctx, post); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to update post")
		}

		updated = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update post transaction")
	}

	srv.log(ctx).Info("Post updated", slog.Int64("postID", id), slog.Int64("userID", principal.ID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:    service.EventPostUpdated,
		PostID:  id,
		ActorID: principal.ID,
	})

	return updated, nil
}

// Delete removes a post and its comments. Only the author may delete.
func (srv *postService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to find post")
		}

		if err := policy.Authorize(post, principal, policy.ActionDelete); err != nil {
			return err
		}

		if err := repoFactory.NewCommentRepository().DeleteByPost(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete post comments")
		}

		if err := postRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete post transaction")
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("postID", id), slog.Int64("userID", principal.ID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:    service.EventPostDeleted,
		PostID:  id,
		ActorID: principal.ID,
	})

	return nil
}

// pageOffset returns the number of rows before page, or false on int overflow.
func pageOffset(page, pageSize int) (int, bool) {
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}

	return (page - 1) * pageSize, true
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
