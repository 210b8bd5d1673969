package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
)

// PostQuery filters ListPosts.
type PostQuery struct {
	Search string // case-insensitive match on title or body; empty lists all
}

// ListPosts returns posts newest first. A search is capped at SearchLimit
// results.
func (b *Board) ListPosts(ctx context.Context, q PostQuery) ([]model.Post, error) {
	if err := live(ctx); err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))

	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := make([]postRow, 0, len(b.posts))
	for _, p := range b.posts {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Body), term) {
			continue
		}
		rows = append(rows, p)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	if term != "" && len(rows) > SearchLimit {
		rows = rows[:SearchLimit]
	}
	out := make([]model.Post, 0, len(rows))
	for _, p := range rows {
		out = append(out, b.post(p))
	}
	return out, nil
}

// PostByID fetches one post with its author and topic.
func (b *Board) PostByID(ctx context.Context, id int64) (model.Post, error) {
	if err := live(ctx); err != nil {
		return model.Post{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.posts[id]
	if !ok {
		return model.Post{}, ErrNotFound
	}
	return b.post(p), nil
}

// CreatePost stores a post by userID. A zero topicID files the post under
// the first topic; an unknown topic is ErrNotFound.
func (b *Board) CreatePost(ctx context.Context, userID int64, title, body string, topicID int64) (model.Post, error) {
	if err := live(ctx); err != nil {
		return model.Post{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if topicID == 0 {
		topicID = 1
	}
	if _, ok := b.topics[topicID]; !ok {
		return model.Post{}, ErrNotFound
	}
	p := postRow{
		ID:        b.id("posts"),
		Title:     title,
		Body:      body,
		UserID:    userID,
		TopicID:   topicID,
		CreatedAt: b.now(),
	}
	b.posts[p.ID] = p
	return b.post(p), nil
}

// UpdatePost replaces title and body of a post owned by userID.
func (b *Board) UpdatePost(ctx context.Context, id, userID int64, title, body string) (model.Post, error) {
	if err := live(ctx); err != nil {
		return model.Post{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.posts[id]
	if !ok {
		return model.Post{}, ErrNotFound
	}
	if p.UserID != userID {
		return model.Post{}, ErrForbidden
	}
	p.Title, p.Body = title, body
	b.posts[id] = p
	return b.post(p), nil
}

// DeletePost removes a post owned by userID together with its comments.
func (b *Board) DeletePost(ctx context.Context, id, userID int64) error {
	if err := live(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.posts[id]
	if !ok {
		return ErrNotFound
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	for cid, c := range b.comments {
		if c.PostID == id {
			delete(b.comments, cid)
		}
	}
	delete(b.posts, id)
	return nil
}

// post joins a row with its author and topic; callers hold the lock.
func (b *Board) post(p postRow) model.Post {
	out := model.Post{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		AuthorID:   p.UserID,
		AuthorName: b.username(p.UserID),
		CreatedAt:  p.CreatedAt,
	}
	if t, ok := b.topics[p.TopicID]; ok {
		out.Topic = &model.TopicRef{ID: t.ID, Title: t.Title}
	}
	return out
}
