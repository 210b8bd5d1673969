package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
)

// ListPosts returns the feed. With a non-blank search term the backend
// filters and orders the results; they are returned exactly as received.
func (c *Client) ListPosts(ctx context.Context, search string) ([]model.Post, error) {
	var q url.Values
	if term := strings.TrimSpace(search); term != "" {
		q = url.Values{"search": {term}}
	}
	var out struct {
		Posts []wirePost `json:"posts"`
	}
	if err := c.do(ctx, request{
		op: "ListPosts", method: http.MethodGet, path: "/posts", query: q,
		auth: authRequired, out: &out,
	}); err != nil {
		return nil, err
	}
	return posts(out.Posts), nil
}

// GetPost returns one post without its comments; see ListComments.
func (c *Client) GetPost(ctx context.Context, id int64) (model.Post, error) {
	var out struct {
		Post *wirePost `json:"post"`
	}
	if err := c.do(ctx, request{
		op: "GetPost", method: http.MethodGet, path: idPath("/posts/%d", id),
		auth: authRequired, out: &out,
	}); err != nil {
		return model.Post{}, err
	}
	// Some backends answer a missing id with 200 and an empty object.
	if out.Post == nil || out.Post.ID == 0 {
		return model.Post{}, &Error{Category: CategoryNotFound, Op: "GetPost", Status: http.StatusOK, Message: "post not found"}
	}
	return out.Post.model(), nil
}

// CreatePost publishes a post in a topic.
func (c *Client) CreatePost(ctx context.Context, in PostInput) (model.Post, error) {
	if err := c.check("CreatePost", in); err != nil {
		return model.Post{}, err
	}
	var out struct {
		Post wirePost `json:"post"`
	}
	if err := c.do(ctx, request{
		op: "CreatePost", method: http.MethodPost, path: "/posts",
		auth: authRequired, body: in, out: &out,
	}); err != nil {
		return model.Post{}, err
	}
	return out.Post.model(), nil
}

// UpdatePost replaces a post's title and body.
func (c *Client) UpdatePost(ctx context.Context, id int64, in PostUpdate) error {
	if err := c.check("UpdatePost", in); err != nil {
		return err
	}
	return c.do(ctx, request{
		op: "UpdatePost", method: http.MethodPut, path: idPath("/posts/%d", id),
		auth: authRequired, body: in,
	})
}

// DeletePost removes a post; the backend removes its comments with it.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op: "DeletePost", method: http.MethodDelete, path: idPath("/posts/%d", id),
		auth: authRequired,
	})
}
