package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves comment endpoints
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CommentRequest represents the request body for creating or editing a comment
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// ListComments returns the comments of a post, oldest first.
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// CreateComment adds a comment by the caller to a post.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	comment, err := h.commentUC.Create(c.Request().Context(), principal, postID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}

// UpdateComment edits a comment. Only its author may do so.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	comment, err := h.commentUC.Update(c.Request().Context(), principal, id, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponse(comment))
}

// DeleteComment removes a comment. Only its author may do so.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
