// Package router registers the board backend's routes.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/gossipboard/gossip-client/internal/config"
	"github.com/gossipboard/gossip-client/internal/handler"
	"github.com/gossipboard/gossip-client/internal/middleware"
	"github.com/gossipboard/gossip-client/internal/repository"
)

// New returns an Echo instance serving board over the full API. rdb may be
// nil, which disables rate limiting.
func New(cfg config.ServerConfig, board *repository.Board, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	limit := middleware.NewTokenBucket(cfg.RateLimit, rdb)

	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(cfg, board), cfg.JWTSecret, limit)
	RegisterBoard(e, handler.NewBoardHandler(board), cfg.JWTSecret, limit)
	return e
}

// RegisterRoutes registers routes that need neither auth nor limiting.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers signup, login and the token check.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	e.POST("/signup", a.Signup, limit)
	e.POST("/login", a.Login, limit)
	e.GET("/validate", a.Validate, middleware.JWTAuth(jwtSecret), limit)
}

// RegisterBoard registers topics, posts and comments. Reading topics is
// public; everything else needs a valid token.
func RegisterBoard(e *echo.Echo, h *handler.BoardHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	public := []echo.MiddlewareFunc{middleware.OptionalJWT(jwtSecret), limit}
	e.GET("/topics", h.ListTopics, public...)
	e.GET("/topics/:id", h.GetTopic, public...)

	auth := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret), limit}
	e.POST("/topics", h.CreateTopic, auth...)
	e.PUT("/topics/:id", h.UpdateTopic, auth...)
	e.DELETE("/topics/:id", h.DeleteTopic, auth...)

	e.GET("/posts", h.ListPosts, auth...)
	e.POST("/posts", h.CreatePost, auth...)
	e.GET("/posts/:id", h.GetPost, auth...)
	e.PUT("/posts/:id", h.UpdatePost, auth...)
	e.DELETE("/posts/:id", h.DeletePost, auth...)

	e.GET("/posts/:id/comments", h.ListComments, auth...)
	e.POST("/posts/:id/comments", h.CreateComment, auth...)
	e.PUT("/comments/:id", h.UpdateComment, auth...)
	e.DELETE("/comments/:id", h.DeleteComment, auth...)
}
