package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gossipboard/gossip-client/internal/repository"
)

type postReq struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	TopicID int64  `json:"topicId"`
}

// ListPosts handles GET /posts?search=.
func (h *BoardHandler) ListPosts(c echo.Context) error {
	posts, err := h.Board.ListPosts(c.Request().Context(), repository.PostQuery{Search: c.QueryParam("search")})
	if err != nil {
		return repoError(c, err, "post")
	}
	out := make([]postJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, postOut(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": out})
}

// GetPost handles GET /posts/:id.
func (h *BoardHandler) GetPost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.Board.PostByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "post")
	}
	return c.JSON(http.StatusOK, echo.Map{"post": postOut(p)})
}

// CreatePost handles POST /posts for the authenticated user.
func (h *BoardHandler) CreatePost(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and body required"})
	}
	p, err := h.Board.CreatePost(c.Request().Context(), uid, req.Title, req.Body, req.TopicID)
	if err != nil {
		return repoError(c, err, "topic")
	}
	return c.JSON(http.StatusCreated, echo.Map{"post": postOut(p)})
}

// UpdatePost handles PUT /posts/:id. Only the author may edit.
func (h *BoardHandler) UpdatePost(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and body required"})
	}
	p, err := h.Board.UpdatePost(c.Request().Context(), id, uid, req.Title, req.Body)
	if err != nil {
		return repoError(c, err, "post")
	}
	return c.JSON(http.StatusOK, echo.Map{"post": postOut(p)})
}

// DeletePost handles DELETE /posts/:id, removing the post's comments too.
func (h *BoardHandler) DeletePost(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Board.DeletePost(c.Request().Context(), id, uid); err != nil {
		return repoError(c, err, "post")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "post deleted"})
}
