// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// Post routes; reads are public, writes require a session
	postsGroup := api.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts)
		postsGroup.POST("", r.postHandler.CreatePost, authenticate)
		postsGroup.GET("/:id", r.postHandler.GetPost)
		postsGroup.PUT("/:id", r.postHandler.UpdatePost, authenticate)
		postsGroup.DELETE("/:id", r.postHandler.DeletePost, authenticate)
		postsGroup.GET("/:id/qr", r.postHandler.PostQRCode)

		postsGroup.GET("/:id/comments", r.commentHandler.ListComments)
		postsGroup.POST("/:id/comments", r.commentHandler.CreateComment, authenticate)
	}

	commentsGroup := api.Group("/comments")
	commentsGroup.Use(authenticate)
	{
		commentsGroup.PUT("/:id", r.commentHandler.UpdateComment)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}

	api.GET("/users/:id", r.userHandler.GetProfile)
}
