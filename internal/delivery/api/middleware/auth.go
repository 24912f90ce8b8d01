package middleware

import (
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Config     *config.Config
}

// AuthMiddleware resolves the session token of a request into a principal.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := config.DefaultCookieName
	if params.Config != nil && params.Config.Cookie != nil && params.Config.Cookie.Name != "" {
		cookieName = params.Config.Cookie.Name
	}

	return &AuthMiddleware{
		identityUC: params.IdentityUC,
		cookieName: cookieName,
	}
}

// Authenticate rejects the request unless it carries a valid token for an existing user.
// The resolved user is stored on the echo context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.identityUC.Resolve(c.Request().Context(), m.extractToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetPrincipal(c, user)

		return next(c)
	}
}

// extractToken prefers the session cookie and falls back to a Bearer header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetPrincipal returns the authenticated user set by Authenticate.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	user := deliverycontext.GetPrincipal(c)

	return user, user != nil
}
