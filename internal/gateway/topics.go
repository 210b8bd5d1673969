package gateway

import (
	"context"
	"net/http"

	"github.com/gossipboard/gossip-client/internal/model"
)

// ListTopics returns every topic. Browsing topics does not need a
// credential, but one is sent when available.
func (c *Client) ListTopics(ctx context.Context) ([]model.Topic, error) {
	var out struct {
		Topics []wireTopic `json:"topics"`
	}
	if err := c.do(ctx, request{
		op: "ListTopics", method: http.MethodGet, path: "/topics",
		auth: authOptional, out: &out,
	}); err != nil {
		return nil, err
	}
	return topics(out.Topics), nil
}

// GetTopic returns one topic.
func (c *Client) GetTopic(ctx context.Context, id int64) (model.Topic, error) {
	var out struct {
		Topic wireTopic `json:"topic"`
	}
	if err := c.do(ctx, request{
		op: "GetTopic", method: http.MethodGet, path: idPath("/topics/%d", id),
		auth: authOptional, out: &out,
	}); err != nil {
		return model.Topic{}, err
	}
	return out.Topic.model(), nil
}

// CreateTopic adds a topic, deriving its slug from the title when none is
// given.
func (c *Client) CreateTopic(ctx context.Context, in TopicInput) (model.Topic, error) {
	if err := c.check("CreateTopic", in); err != nil {
		return model.Topic{}, err
	}
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
	var out struct {
		Topic wireTopic `json:"topic"`
	}
	if err := c.do(ctx, request{
		op: "CreateTopic", method: http.MethodPost, path: "/topics",
		auth: authRequired, body: in, out: &out,
	}); err != nil {
		return model.Topic{}, err
	}
	return out.Topic.model(), nil
}

// UpdateTopic changes a topic's title and description. The slug is kept.
func (c *Client) UpdateTopic(ctx context.Context, id int64, in TopicInput) error {
	if err := c.check("UpdateTopic", in); err != nil {
		return err
	}
	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{in.Title, in.Description}
	return c.do(ctx, request{
		op: "UpdateTopic", method: http.MethodPut, path: idPath("/topics/%d", id),
		auth: authRequired, body: body,
	})
}

// DeleteTopic removes a topic. The backend refuses while posts still
// reference it, which surfaces as ErrConflictOnDelete.
func (c *Client) DeleteTopic(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op: "DeleteTopic", method: http.MethodDelete, path: idPath("/topics/%d", id),
		auth: authRequired,
	})
}
