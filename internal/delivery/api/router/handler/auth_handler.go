// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blog/config"
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves registration, login, logout and the current user.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cookie config.CookieConfig
	ttl    time.Duration
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	cookie := config.CookieConfig{Name: config.DefaultCookieName, SameSite: "lax"}
	if params.Config.Cookie != nil {
		cookie = *params.Config.Cookie
	}
	if cookie.Name == "" {
		cookie.Name = config.DefaultCookieName
	}

	// The cookie lives exactly as long as the token it carries.
	return &AuthHandler{
		authUC: params.AuthUC,
		cookie: cookie,
		ttl:    params.TokenService.TTL(),
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and starts a session for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.AccessToken)

	return response.Success(c, http.StatusCreated, toUserResponse(output.User))
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, toUserResponse(output.User))
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked server side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.newCookie("", -1))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(h.newCookie(token, int(h.ttl/time.Second)))
}

func (h *AuthHandler) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: parseSameSite(h.cookie.SameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
