package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type topicReq struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListTopics handles GET /topics.
func (h *BoardHandler) ListTopics(c echo.Context) error {
	topics, err := h.Board.ListTopics(c.Request().Context())
	if err != nil {
		return repoError(c, err, "topic")
	}
	out := make([]topicJSON, 0, len(topics))
	for _, t := range topics {
		out = append(out, topicOut(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"topics": out})
}

// GetTopic handles GET /topics/:id.
func (h *BoardHandler) GetTopic(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Board.TopicByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err, "topic")
	}
	return c.JSON(http.StatusOK, echo.Map{"topic": topicOut(t)})
}

// CreateTopic handles POST /topics. A missing slug is derived from the title.
func (h *BoardHandler) CreateTopic(c echo.Context) error {
	var req topicReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = strings.ReplaceAll(strings.ToLower(req.Title), " ", "-")
	}
	t, err := h.Board.CreateTopic(c.Request().Context(), req.Title, slug, req.Description)
	if err != nil {
		return repoError(c, err, "topic")
	}
	return c.JSON(http.StatusCreated, echo.Map{"topic": topicOut(t)})
}

// UpdateTopic handles PUT /topics/:id.
func (h *BoardHandler) UpdateTopic(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req topicReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	t, err := h.Board.UpdateTopic(c.Request().Context(), id, req.Title, req.Description)
	if err != nil {
		return repoError(c, err, "topic")
	}
	return c.JSON(http.StatusOK, echo.Map{"topic": topicOut(t)})
}

// DeleteTopic handles DELETE /topics/:id. Topics with posts answer 409.
func (h *BoardHandler) DeleteTopic(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Board.DeleteTopic(c.Request().Context(), id); err != nil {
		return repoError(c, err, "topic")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "topic deleted"})
}
