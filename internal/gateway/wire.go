package gateway

import (
	"time"

	"github.com/gossipboard/gossip-client/internal/model"
)

// Wire shapes follow the backend's JSON, which uses the Go field names of
// its own models ("ID", "UserID", nested "User" and "Topic").

type wireUser struct {
	ID       int64  `json:"ID"`
	Username string `json:"Username"`
}

type wireTopic struct {
	ID          int64  `json:"ID"`
	Title       string `json:"Title"`
	Slug        string `json:"Slug"`
	Description string `json:"Description"`
}

type wirePost struct {
	ID        int64         `json:"ID"`
	CreatedAt time.Time     `json:"CreatedAt"`
	Title     string        `json:"Title"`
	Body      string        `json:"Body"`
	UserID    int64         `json:"UserID"`
	User      *wireUser     `json:"User"`
	TopicID   int64         `json:"TopicID"`
	Topic     *wireTopic    `json:"Topic"`
	Comments  []wireComment `json:"Comments"`
}

type wireComment struct {
	ID        int64     `json:"ID"`
	CreatedAt time.Time `json:"CreatedAt"`
	Body      string    `json:"Body"`
	UserID    int64     `json:"UserID"`
	User      *wireUser `json:"User"`
	PostID    int64     `json:"PostID"`
}

func (w wireTopic) model() model.Topic {
	return model.Topic{ID: w.ID, Title: w.Title, Slug: w.Slug, Description: w.Description}
}

func (w wirePost) model() model.Post {
	p := model.Post{
		ID:        w.ID,
		Title:     w.Title,
		Body:      w.Body,
		AuthorID:  w.UserID,
		CreatedAt: w.CreatedAt,
	}
	if w.User != nil {
		p.AuthorName = w.User.Username
	}
	// An unloaded association comes back as a zero object, not null.
	switch {
	case w.Topic != nil && w.Topic.ID != 0:
		p.Topic = &model.TopicRef{ID: w.Topic.ID, Title: w.Topic.Title}
	case w.TopicID != 0:
		p.Topic = &model.TopicRef{ID: w.TopicID}
	}
	if len(w.Comments) > 0 {
		p.Comments = comments(w.Comments)
	}
	return p
}

func (w wireComment) model() model.Comment {
	c := model.Comment{
		ID:        w.ID,
		Body:      w.Body,
		PostID:    w.PostID,
		AuthorID:  w.UserID,
		CreatedAt: w.CreatedAt,
	}
	if w.User != nil {
		c.AuthorName = w.User.Username
	}
	return c
}

func topics(in []wireTopic) []model.Topic {
	out := make([]model.Topic, 0, len(in))
	for _, w := range in {
		out = append(out, w.model())
	}
	return out
}

func posts(in []wirePost) []model.Post {
	out := make([]model.Post, 0, len(in))
	for _, w := range in {
		out = append(out, w.model())
	}
	return out
}

func comments(in []wireComment) []model.Comment {
	out := make([]model.Comment, 0, len(in))
	for _, w := range in {
		out = append(out, w.model())
	}
	return out
}
