package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
)

// ListTopics returns all topics ordered by id.
func (b *Board) ListTopics(ctx context.Context) ([]model.Topic, error) {
	if err := live(ctx); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Topic, 0, len(b.topics))
	for _, t := range b.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// TopicByID fetches one topic.
func (b *Board) TopicByID(ctx context.Context, id int64) (model.Topic, error) {
	if err := live(ctx); err != nil {
		return model.Topic{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.topics[id]
	if !ok {
		return model.Topic{}, ErrNotFound
	}
	return t, nil
}

// CreateTopic stores a topic. Slugs are unique.
func (b *Board) CreateTopic(ctx context.Context, title, slug, description string) (model.Topic, error) {
	if err := live(ctx); err != nil {
		return model.Topic{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.topics {
		if strings.EqualFold(t.Slug, slug) {
			return model.Topic{}, ErrDuplicate
		}
	}
	t := model.Topic{ID: b.id("topics"), Title: title, Slug: slug, Description: description}
	b.topics[t.ID] = t
	return t, nil
}

// UpdateTopic changes title and description. Topics have no owner, so any
// signed-in user may rename them.
func (b *Board) UpdateTopic(ctx context.Context, id int64, title, description string) (model.Topic, error) {
	if err := live(ctx); err != nil {
		return model.Topic{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[id]
	if !ok {
		return model.Topic{}, ErrNotFound
	}
	t.Title = title
	t.Description = description
	b.topics[id] = t
	return t, nil
}

// DeleteTopic removes a topic that no post references; otherwise it
// returns ErrConflict and changes nothing.
func (b *Board) DeleteTopic(ctx context.Context, id int64) error {
	if err := live(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[id]; !ok {
		return ErrNotFound
	}
	for _, p := range b.posts {
		if p.TopicID == id {
			return ErrConflict
		}
	}
	delete(b.topics, id)
	return nil
}
