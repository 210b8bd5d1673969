package view

import (
	"context"
	"strings"

	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
)

// Empty-state messages of the feed.
const (
	EmptySearchMessage = "No results found matching your vibes."
	EmptyFeedMessage   = "No posts yet. Be the first to say something!"
)

// FeedBackend is what the feed needs from the gateway.
type FeedBackend interface {
	ListPosts(ctx context.Context, search string) ([]model.Post, error)
	CreatePost(ctx context.Context, in gateway.PostInput) (model.Post, error)
}

// FeedSnapshot is one consistent copy of the feed.
type FeedSnapshot struct {
	Posts  []model.Post
	Search string // term the posts were fetched with; empty for the full feed
}

// EmptyMessage returns the text to show instead of an empty list, or ""
// when there are posts.
func (s FeedSnapshot) EmptyMessage() string {
	switch {
	case len(s.Posts) > 0:
		return ""
	case s.Search != "":
		return EmptySearchMessage
	default:
		return EmptyFeedMessage
	}
}

// FeedView is the list of posts, optionally narrowed by a search.
type FeedView struct {
	cache[FeedSnapshot]
	backend FeedBackend
	search  string // guarded by cache.mu
}

// NewFeedView returns an empty feed.
func NewFeedView(b FeedBackend, opts ...Option) *FeedView {
	o := buildOptions(opts)
	return &FeedView{
		cache:   cache[FeedSnapshot]{name: "feed", log: o.log},
		backend: b,
	}
}

// Load fetches the feed with the current search term.
func (v *FeedView) Load(ctx context.Context) error {
	gen, err := v.begin()
	if err != nil {
		return err
	}
	v.mu.Lock()
	term := v.search
	v.mu.Unlock()

	posts, err := v.backend.ListPosts(ctx, term)
	return v.finish(gen, FeedSnapshot{Posts: posts, Search: term}, err)
}

// Search sets the term and reloads. A blank term shows the full feed.
func (v *FeedView) Search(ctx context.Context, term string) error {
	if err := v.alive(); err != nil {
		return err
	}
	v.setSearch(strings.TrimSpace(term))
	return v.Load(ctx)
}

// SearchTerm returns the term the next load will use.
func (v *FeedView) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.search
}

// CreatePost publishes a post, clears any search and reloads the full feed.
// On failure the feed is left untouched.
func (v *FeedView) CreatePost(ctx context.Context, in gateway.PostInput) (model.Post, error) {
	if err := v.alive(); err != nil {
		return model.Post{}, err
	}
	p, err := v.backend.CreatePost(ctx, in)
	if err != nil {
		return model.Post{}, err
	}
	v.setSearch("")
	return p, refreshed(v.Load(ctx))
}

func (v *FeedView) setSearch(term string) {
	v.mu.Lock()
	v.search = term
	v.mu.Unlock()
}

// Discard detaches the view; loads still in flight are dropped.
func (v *FeedView) Discard() { v.discard() }
