package impl

import (
	"context"
	"log/slog"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// GetProfile returns the public profile of a user and how many posts they wrote.
func (srv *userService) GetProfile(ctx context.Context, id int64) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		count, err := repoFactory.NewPostRepository().CountByAuthor(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count posts")
		}

		profile = &entity.UserProfile{User: user, PostCount: count}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute get profile transaction")
	}

	return profile, nil
}
