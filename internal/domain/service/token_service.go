package service

import (
	"errors"
	"time"
)

var (
	// ErrTokenMalformed is returned for tokens that cannot be parsed or verified.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are self-contained; nothing is stored server-side.
type TokenService interface {
	// Issue creates a signed token whose subject is userID.
	Issue(userID int64) (string, error)

	// Validate checks signature and expiry and returns the subject user id.
	Validate(token string) (int64, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
