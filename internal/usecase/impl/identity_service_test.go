package impl

import (
	"context"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		token   string
		setup   func(fx identityServiceFixtures)
		wantErr error
		wantID  int64
	}{
		{
			name:    "missing token",
			token:   "",
			setup:   func(identityServiceFixtures) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:  "malformed token",
			token: "garbage",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.On("Validate", "garbage").Return(int64(0), service.ErrTokenMalformed)
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:  "expired token",
			token: "old",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.On("Validate", "old").Return(int64(0), errors.Wrap(service.ErrTokenExpired, "validate"))
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name:  "user deleted",
			token: "orphan",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.On("Validate", "orphan").Return(int64(9), nil)
				fx.userRepo.On("FindByID", ctx, int64(9)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrPrincipalNotFound,
		},
		{
			name:  "valid token",
			token: "good",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.On("Validate", "good").Return(int64(4), nil)
				fx.userRepo.On("FindByID", ctx, int64(4)).Return(newTestUser(4, "dave"), nil)
			},
			wantID: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			tt.setup(fx)

			user, err := fx.service.Resolve(ctx, tt.token)
			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.Equal(t, tt.wantErr, errors.Cause(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}
