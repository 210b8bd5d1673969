package view

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
)

// PostBackend is what the post detail view needs from the gateway.
type PostBackend interface {
	GetPost(ctx context.Context, id int64) (model.Post, error)
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
	UpdatePost(ctx context.Context, id int64, in gateway.PostUpdate) error
	DeletePost(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, postID int64, body string) (model.Comment, error)
	UpdateComment(ctx context.Context, id int64, body string) error
	DeleteComment(ctx context.Context, id int64) error
}

// PostSnapshot is a post together with its discussion, both from the same
// load.
type PostSnapshot struct {
	Post     model.Post
	Comments []model.Comment
}

// PostView is one post and its comments.
type PostView struct {
	cache[PostSnapshot]
	backend PostBackend
	confirm Confirmer
	postID  int64
}

// NewPostView returns an empty view of post id.
func NewPostView(b PostBackend, id int64, opts ...Option) *PostView {
	o := buildOptions(opts)
	return &PostView{
		cache:   cache[PostSnapshot]{name: fmt.Sprintf("post/%d", id), log: o.log},
		backend: b,
		confirm: o.confirm,
		postID:  id,
	}
}

// PostID returns the id of the post this view shows.
func (v *PostView) PostID() int64 { return v.postID }

// Load fetches the post and its comments concurrently. If either fetch
// fails the view goes to StateError; it is never half loaded.
func (v *PostView) Load(ctx context.Context) error {
	gen, err := v.begin()
	if err != nil {
		return err
	}
	var snap PostSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := v.backend.GetPost(gctx, v.postID)
		snap.Post = p
		return err
	})
	g.Go(func() error {
		cs, err := v.backend.ListComments(gctx, v.postID)
		snap.Comments = cs
		return err
	})
	if err := g.Wait(); err != nil {
		return v.finish(gen, PostSnapshot{}, err)
	}
	return v.finish(gen, snap, nil)
}

// EditPost replaces the post's title and body and reloads.
func (v *PostView) EditPost(ctx context.Context, in gateway.PostUpdate) error {
	if err := v.alive(); err != nil {
		return err
	}
	if err := v.backend.UpdatePost(ctx, v.postID, in); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// DeletePost asks for confirmation and deletes the post. On success the
// view is discarded; the caller should navigate back to the feed.
func (v *PostView) DeletePost(ctx context.Context) error {
	if err := v.alive(); err != nil {
		return err
	}
	if err := confirmed(ctx, v.confirm, "Delete this post?"); err != nil {
		return err
	}
	if err := v.backend.DeletePost(ctx, v.postID); err != nil {
		return err
	}
	v.discard()
	return nil
}

// AddComment posts a comment and reloads.
func (v *PostView) AddComment(ctx context.Context, body string) error {
	if err := v.alive(); err != nil {
		return err
	}
	if _, err := v.backend.CreateComment(ctx, v.postID, body); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// EditComment replaces a comment's body and reloads.
func (v *PostView) EditComment(ctx context.Context, commentID int64, body string) error {
	if err := v.alive(); err != nil {
		return err
	}
	if err := v.backend.UpdateComment(ctx, commentID, body); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// DeleteComment asks for confirmation, deletes a comment and reloads.
func (v *PostView) DeleteComment(ctx context.Context, commentID int64) error {
	if err := v.alive(); err != nil {
		return err
	}
	if err := confirmed(ctx, v.confirm, "Delete this comment?"); err != nil {
		return err
	}
	if err := v.backend.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// Discard detaches the view; loads still in flight are dropped.
func (v *PostView) Discard() { v.discard() }
