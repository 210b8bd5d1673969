package repository

import (
	"context"
	"sort"

	"github.com/gossipboard/gossip-client/internal/model"
)

// ListComments returns the comments of a post, oldest first.
func (b *Board) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	if err := live(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.posts[postID]; !ok {
		return nil, ErrNotFound
	}
	out := []model.Comment{}
	for _, c := range b.comments {
		if c.PostID == postID {
			out = append(out, b.comment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateComment adds a comment by userID under postID.
func (b *Board) CreateComment(ctx context.Context, postID, userID int64, body string) (model.Comment, error) {
	if err := live(ctx); err != nil {
		return model.Comment{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.posts[postID]; !ok {
		return model.Comment{}, ErrNotFound
	}
	c := commentRow{
		ID:        b.id("comments"),
		Body:      body,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: b.now(),
	}
	b.comments[c.ID] = c
	return b.comment(c), nil
}

// UpdateComment replaces the body of a comment owned by userID.
func (b *Board) UpdateComment(ctx context.Context, id, userID int64, body string) (model.Comment, error) {
	if err := live(ctx); err != nil {
		return model.Comment{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.comments[id]
	if !ok {
		return model.Comment{}, ErrNotFound
	}
	if c.UserID != userID {
		return model.Comment{}, ErrForbidden
	}
	c.Body = body
	b.comments[id] = c
	return b.comment(c), nil
}

// DeleteComment removes a comment owned by userID.
func (b *Board) DeleteComment(ctx context.Context, id, userID int64) error {
	if err := live(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.comments[id]
	if !ok {
		return ErrNotFound
	}
	if c.UserID != userID {
		return ErrForbidden
	}
	delete(b.comments, id)
	return nil
}

func (b *Board) comment(c commentRow) model.Comment {
	return model.Comment{
		ID:         c.ID,
		Body:       c.Body,
		PostID:     c.PostID,
		AuthorID:   c.UserID,
		AuthorName: b.username(c.UserID),
		CreatedAt:  c.CreatedAt,
	}
}
