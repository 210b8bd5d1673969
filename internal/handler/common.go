package handler // HTTP handlers of the board backend

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gossipboard/gossip-client/internal/middleware"
	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/repository"
)

// BoardHandler serves topics, posts and comments.
type BoardHandler struct {
	Board *repository.Board
}

func NewBoardHandler(b *repository.Board) *BoardHandler {
	if b == nil {
		panic("nil board passed to NewBoardHandler")
	}
	return &BoardHandler{Board: b}
}

// Response bodies use the field names clients of this API already parse
// ("ID", "UserID", nested "User" and "Topic").

type userJSON struct {
	ID       int64  `json:"ID"`
	Username string `json:"Username"`
}

type topicJSON struct {
	ID          int64  `json:"ID"`
	Title       string `json:"Title"`
	Slug        string `json:"Slug"`
	Description string `json:"Description"`
}

type postJSON struct {
	ID        int64      `json:"ID"`
	CreatedAt time.Time  `json:"CreatedAt"`
	Title     string     `json:"Title"`
	Body      string     `json:"Body"`
	UserID    int64      `json:"UserID"`
	User      userJSON   `json:"User"`
	TopicID   int64      `json:"TopicID"`
	Topic     *topicJSON `json:"Topic"`
}

type commentJSON struct {
	ID        int64     `json:"ID"`
	CreatedAt time.Time `json:"CreatedAt"`
	Body      string    `json:"Body"`
	UserID    int64     `json:"UserID"`
	User      userJSON  `json:"User"`
	PostID    int64     `json:"PostID"`
}

func topicOut(t model.Topic) topicJSON {
	return topicJSON{ID: t.ID, Title: t.Title, Slug: t.Slug, Description: t.Description}
}

func postOut(p model.Post) postJSON {
	out := postJSON{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.AuthorID,
		User:      userJSON{ID: p.AuthorID, Username: p.AuthorName},
	}
	if p.Topic != nil {
		out.TopicID = p.Topic.ID
		out.Topic = &topicJSON{ID: p.Topic.ID, Title: p.Topic.Title}
	}
	return out
}

func commentOut(c model.Comment) commentJSON {
	return commentJSON{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Body:      c.Body,
		UserID:    c.AuthorID,
		User:      userJSON{ID: c.AuthorID, Username: c.AuthorName},
		PostID:    c.PostID,
	}
}

// getUserID reads the id JWTAuth stored; protected routes always have one.
func getUserID(c echo.Context) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, errors.New("missing user_id in context")
	}
	return id, nil
}

func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// repoError maps repository sentinels to responses; what names the record
// in 404 messages.
func repoError(c echo.Context, err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": what + " not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": what + " is still in use"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"error": what + " already exists"})
	}
	c.Logger().Errorf("%s: %v", what, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
