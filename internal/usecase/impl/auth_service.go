// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingEqualizerPassword is hashed once and checked against on unknown-user
// logins so both failure paths pay one bcrypt comparison.
const timingEqualizerPassword = "blog-login-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user after checking username then email availability.
// The checks, hashing and insert run in one transaction; the unique indexes
// catch a concurrent registration that slips between check and insert.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureAvailable(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return domainerrors.ErrUsernameTaken
			}

			return errors.Wrap(err, "failed to check username")
		}

		if err := ensureAvailable(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return domainerrors.ErrEmailTaken
			}

			return errors.Wrap(err, "failed to check email")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		registered = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, err := srv.tokenService.Issue(registered.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.AuthOutput{User: registered, AccessToken: token}, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords yield the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user")
		}

		srv.checkDummy(input.Password)
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

func (srv *authService) checkDummy(password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingEqualizerPassword)
		if err == nil {
			srv.dummyHash = hash
		}
	})

	if srv.dummyHash != "" {
		srv.hasher.Check(password, srv.dummyHash)
	}
}

// ensureAvailable turns a uniqueness probe into nil when nothing was found,
// ErrConflict when a record exists, or the lookup error.
func ensureAvailable(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return domainerrors.ErrConflict
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}
