package handler

import (
	"net/http"

	"blog/internal/delivery/api/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves public user profiles
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// GetProfile returns a user's public profile with their post count.
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UserProfileResponse{
		ID:        profile.User.ID,
		Username:  profile.User.Username,
		CreatedAt: profile.User.CreatedAt,
		PostCount: profile.PostCount,
	})
}
