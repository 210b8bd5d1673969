package view

import (
	"context"

	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
)

// UserCreatedDescription is the description given to topics created from
// the client.
const UserCreatedDescription = "User Created"

// TopicsBackend is what the topic manager needs from the gateway.
type TopicsBackend interface {
	ListTopics(ctx context.Context) ([]model.Topic, error)
	CreateTopic(ctx context.Context, in gateway.TopicInput) (model.Topic, error)
	UpdateTopic(ctx context.Context, id int64, in gateway.TopicInput) error
	DeleteTopic(ctx context.Context, id int64) error
}

// TopicsSnapshot is one consistent copy of the topic list.
type TopicsSnapshot struct {
	Topics []model.Topic
}

// Find returns the topic with id.
func (s TopicsSnapshot) Find(id int64) (model.Topic, bool) {
	for _, t := range s.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return model.Topic{}, false
}

// TopicsView is the topic manager.
type TopicsView struct {
	cache[TopicsSnapshot]
	backend TopicsBackend
	confirm Confirmer
}

// NewTopicsView returns an empty topic list.
func NewTopicsView(b TopicsBackend, opts ...Option) *TopicsView {
	o := buildOptions(opts)
	return &TopicsView{
		cache:   cache[TopicsSnapshot]{name: "topics", log: o.log},
		backend: b,
		confirm: o.confirm,
	}
}

// Load fetches all topics.
func (v *TopicsView) Load(ctx context.Context) error {
	gen, err := v.begin()
	if err != nil {
		return err
	}
	topics, err := v.backend.ListTopics(ctx)
	return v.finish(gen, TopicsSnapshot{Topics: topics}, err)
}

// Create adds a topic named title and reloads.
func (v *TopicsView) Create(ctx context.Context, title string) (model.Topic, error) {
	if err := v.alive(); err != nil {
		return model.Topic{}, err
	}
	t, err := v.backend.CreateTopic(ctx, gateway.TopicInput{
		Title:       title,
		Slug:        gateway.Slugify(title),
		Description: UserCreatedDescription,
	})
	if err != nil {
		return model.Topic{}, err
	}
	return t, refreshed(v.Load(ctx))
}

// Rename changes a topic's title, keeping the description currently
// cached for it, and reloads.
func (v *TopicsView) Rename(ctx context.Context, id int64, title string) error {
	if err := v.alive(); err != nil {
		return err
	}
	current, _ := v.Snapshot().Find(id)
	if err := v.backend.UpdateTopic(ctx, id, gateway.TopicInput{
		Title:       title,
		Description: current.Description,
	}); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// Delete asks for confirmation and deletes a topic. A topic that still has
// posts fails with gateway.ErrConflictOnDelete and stays in the list.
func (v *TopicsView) Delete(ctx context.Context, id int64) error {
	if err := v.alive(); err != nil {
		return err
	}
	if err := confirmed(ctx, v.confirm, "Delete topic?"); err != nil {
		return err
	}
	if err := v.backend.DeleteTopic(ctx, id); err != nil {
		return err
	}
	return refreshed(v.Load(ctx))
}

// Discard detaches the view; loads still in flight are dropped.
func (v *TopicsView) Discard() { v.discard() }
