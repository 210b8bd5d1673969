package view

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
)

// gatedFeed answers each ListPosts call with the posts sent on the release
// channel of its search term, after announcing the call on started.
type gatedFeed struct {
	started chan string

	mu       sync.Mutex
	releases map[string]chan []model.Post
}

func newGatedFeed() *gatedFeed {
	return &gatedFeed{started: make(chan string, 4), releases: map[string]chan []model.Post{}}
}

// release returns the reply channel for calls searching term.
func (g *gatedFeed) release(term string) chan []model.Post {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.releases[term]
	if !ok {
		ch = make(chan []model.Post)
		g.releases[term] = ch
	}
	return ch
}

func (g *gatedFeed) ListPosts(_ context.Context, search string) ([]model.Post, error) {
	ch := g.release(search)
	g.started <- search
	return <-ch, nil
}

func (g *gatedFeed) CreatePost(context.Context, gateway.PostInput) (model.Post, error) {
	return model.Post{}, nil
}

func TestStaleLoadIsDropped(t *testing.T) {
	ctx := context.Background()
	g := newGatedFeed()
	feed := NewFeedView(g)

	first := make(chan error, 1)
	go func() { first <- feed.Load(ctx) }()
	require.Equal(t, "", <-g.started)

	second := make(chan error, 1)
	go func() { second <- feed.Search(ctx, "new") }()
	require.Equal(t, "new", <-g.started)

	g.release("new") <- []model.Post{{ID: 2, Title: "new result"}}
	require.NoError(t, <-second)
	g.release("") <- []model.Post{{ID: 1, Title: "old result"}}
	assert.ErrorIs(t, <-first, ErrStale)

	snap := feed.Snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "new result", snap.Posts[0].Title)
	assert.Equal(t, StateLoaded, feed.State())
}

func TestNavigationDiscardsLateResults(t *testing.T) {
	ctx := context.Background()
	g := newGatedFeed()
	feed := NewFeedView(g)
	var nav Navigator
	nav.Open(feed)

	done := make(chan error, 1)
	go func() { done <- feed.Load(ctx) }()
	<-g.started

	other := NewTopicsView(nil)
	nav.Open(other)
	assert.Same(t, other, nav.Current())

	g.release("") <- []model.Post{{ID: 1}}
	assert.ErrorIs(t, <-done, ErrStale)
	assert.Equal(t, StateEmpty, feed.State())
	assert.Empty(t, feed.Snapshot().Posts)
	assert.ErrorIs(t, feed.Search(ctx, "x"), ErrDiscarded)

	nav.Close()
	assert.Nil(t, nav.Current())
	assert.ErrorIs(t, other.Load(ctx), ErrDiscarded)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "State(9)", State(9).String())
}
