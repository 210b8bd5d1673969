package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type commentReq struct {
	Body string `json:"body"`
}

// ListComments handles GET /posts/:id/comments.
func (h *BoardHandler) ListComments(c echo.Context) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	comments, err := h.Board.ListComments(c.Request().Context(), postID)
	if err != nil {
		return repoError(c, err, "post")
	}
	out := make([]commentJSON, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentOut(cm))
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": out})
}

// CreateComment handles POST /posts/:id/comments.
func (h *BoardHandler) CreateComment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	postID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req commentReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Body) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "body required"})
	}
	cm, err := h.Board.CreateComment(c.Request().Context(), postID, uid, req.Body)
	if err != nil {
		return repoError(c, err, "post")
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment": commentOut(cm)})
}

// UpdateComment handles PUT /comments/:id. Only the author may edit.
func (h *BoardHandler) UpdateComment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req commentReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Body) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "body required"})
	}
	cm, err := h.Board.UpdateComment(c.Request().Context(), id, uid, req.Body)
	if err != nil {
		return repoError(c, err, "comment")
	}
	return c.JSON(http.StatusOK, echo.Map{"comment": commentOut(cm)})
}

// DeleteComment handles DELETE /comments/:id.
func (h *BoardHandler) DeleteComment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Board.DeleteComment(c.Request().Context(), id, uid); err != nil {
		return repoError(c, err, "comment")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "comment deleted"})
}
