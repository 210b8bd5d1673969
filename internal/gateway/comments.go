package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
)

// ListComments returns the discussion under a post.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	var out struct {
		Comments []wireComment `json:"comments"`
	}
	if err := c.do(ctx, request{
		op: "ListComments", method: http.MethodGet, path: idPath("/posts/%d/comments", postID),
		auth: authRequired, out: &out,
	}); err != nil {
		return nil, err
	}
	return comments(out.Comments), nil
}

// CreateComment adds a comment. Blank bodies are refused locally.
func (c *Client) CreateComment(ctx context.Context, postID int64, body string) (model.Comment, error) {
	in := commentInput{Body: strings.TrimSpace(body)}
	if err := c.check("CreateComment", in); err != nil {
		return model.Comment{}, err
	}
	var out struct {
		Comment wireComment `json:"comment"`
	}
	if err := c.do(ctx, request{
		op: "CreateComment", method: http.MethodPost, path: idPath("/posts/%d/comments", postID),
		auth: authRequired, body: in, out: &out,
	}); err != nil {
		return model.Comment{}, err
	}
	return out.Comment.model(), nil
}

// UpdateComment replaces a comment's body.
func (c *Client) UpdateComment(ctx context.Context, id int64, body string) error {
	in := commentInput{Body: strings.TrimSpace(body)}
	if err := c.check("UpdateComment", in); err != nil {
		return err
	}
	return c.do(ctx, request{
		op: "UpdateComment", method: http.MethodPut, path: idPath("/comments/%d", id),
		auth: authRequired, body: in,
	})
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op: "DeleteComment", method: http.MethodDelete, path: idPath("/comments/%d", id),
		auth: authRequired,
	})
}
