package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService creates the resolver used by the authentication middleware.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Resolve validates token and loads the user it names. It never writes.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	userID, err := srv.tokenService.Validate(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Token rejected", slog.Any("error", err))
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	return user, nil
}
