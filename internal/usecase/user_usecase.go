package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// UserUsecase defines read operations on public user data.
type UserUsecase interface {
	GetProfile(ctx context.Context, id int64) (*entity.UserProfile, error)
}
