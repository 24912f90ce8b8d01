package handler

import (
	"log/slog"
	"net/http"

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

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC    usecase.PostUsecase
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// PostHandler serves post endpoints
type PostHandler struct {
	postUC          usecase.PostUsecase
	qrService       service.QRCodeService
	defaultPageSize int
	logger          *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	defaultPageSize := 20
	if params.Config.Pagination != nil && params.Config.Pagination.DefaultPageSize > 0 {
		defaultPageSize = params.Config.Pagination.DefaultPageSize
	}

	return &PostHandler{
		postUC:          params.PostUC,
		qrService:       params.QRService,
		defaultPageSize: defaultPageSize,
		logger:          params.Logger,
	}
}

// PostRequest represents the request body for creating or replacing a post
type PostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// ListPosts returns one page of posts, newest first.
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}

	pageSize, err := queryInt(c, "page_size", h.defaultPageSize)
	if err != nil {
		return err
	}

	result, err := h.postUC.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostListResponse(result))
}

// CreatePost creates a post owned by the caller.
func (h *PostHandler) CreatePost(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Create(c.Request().Context(), principal, usecase.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

// GetPost returns a single post.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// UpdatePost replaces a post's title and content. Only its author may do so.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Update(c.Request().Context(), principal, id, usecase.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// DeletePost removes a post and its comments. Only its author may do so.
func (h *PostHandler) DeletePost(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// PostQRCode returns a PNG QR code that links to the post.
func (h *PostHandler) PostQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.postUC.Get(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrService.GeneratePostQR(id)
	if err != nil {
		return errors.Wrap(err, "failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
