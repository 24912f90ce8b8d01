package impl

import (
	"context"
	"log/slog"

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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a comment to an existing post.
func (srv *commentService) Create(ctx context.Context, principal *entity.User, postID int64, content string) (*entity.Comment, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	content, err := normalizeCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: principal.ID,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewPostRepository().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to find post")
		}

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to create comment")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create comment transaction")
	}
	comment.Author = principal

	srv.log(ctx).Info("Comment created", slog.Int64("commentID", comment.ID), slog.Int64("postID", postID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:      service.EventCommentCreated,
		PostID:    postID,
		CommentID: comment.ID,
		ActorID:   principal.ID,
	})

	return comment, nil
}

// ListByPost returns the comments of a post, oldest first. An unknown post has none.
func (srv *commentService) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	if comments == nil {
		comments = []*entity.Comment{}
	}

	return comments, nil
}

// Update replaces the content of a comment. Only its author may update.
func (srv *commentService) Update(ctx context.Context, principal *entity.User, id int64, content string) (*entity.Comment, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if err := policy.Authorize(comment, principal, policy.ActionUpdate); err != nil {
			return err
		}

		normalized, err := normalizeCommentContent(content)
		if err != nil {
			return err
		}

		comment.Content = normalized
		if err := commentRepo.Update(ctx, comment); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to update comment")
		}

		updated = comment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update comment transaction")
	}

	srv.log(ctx).Info("Comment updated", slog.Int64("commentID", id), slog.Int64("userID", principal.ID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:      service.EventCommentUpdated,
		PostID:    updated.PostID,
		CommentID: id,
		ActorID:   principal.ID,
	})

	return updated, nil
}

// Delete removes a comment. Only its author may delete.
func (srv *commentService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	var postID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if err := policy.Authorize(comment, principal, policy.ActionDelete); err != nil {
			return err
		}

		if err := commentRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to delete comment")
		}
		postID = comment.PostID

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete comment transaction")
	}

	srv.log(ctx).Info("Comment deleted", slog.Int64("commentID", id), slog.Int64("userID", principal.ID))
	publishContentEvent(ctx, srv.publisher, srv.logger, &service.ContentEvent{
		Type:      service.EventCommentDeleted,
		PostID:    postID,
		CommentID: id,
		ActorID:   principal.ID,
	})

	return nil
}
