// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the authenticated user and a fresh session token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// AuthUsecase defines registration and login.
type AuthUsecase interface {
	// Register creates an account and issues a session token for it.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}

// IdentityUsecase turns a presented session token into a principal.
type IdentityUsecase interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
