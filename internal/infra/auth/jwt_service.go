package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog/config"
	"blog/internal/domain/service"
	"blog/internal/errors"
)

const (
	defaultAlgorithm = "HS256"
	defaultTokenTTL  = 24 * time.Hour
)

// tokenClaims are the claims carried by a session token.
type tokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := defaultAlgorithm
	ttl := defaultTokenTTL
	if cfg.JWT != nil {
		if cfg.JWT.Algorithm != "" {
			algorithm = cfg.JWT.Algorithm
		}
		if cfg.JWT.ExpireMinutes > 0 {
			ttl = cfg.JWT.TokenTTL()
		}
	}

	// Only shared-secret algorithms are supported.
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", algorithm)
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for userID that expires after the configured TTL.
func (s *jwtService) Issue(userID int64) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Validate verifies the token and returns its subject.
func (s *jwtService) Validate(tokenString string) (int64, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, service.ErrTokenExpired
		}

		return 0, service.ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || userID != claims.UserID {
		return 0, service.ErrTokenMalformed
	}

	return userID, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
