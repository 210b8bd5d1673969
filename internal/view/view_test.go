package view

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossipboard/gossip-client/internal/boardtest"
	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/tokenstore"
)

// client returns a gateway signed in as a new user called name.
func client(t *testing.T, b *boardtest.Backend, name string) *gateway.Client {
	t.Helper()
	id, _ := b.User(t, name)
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), b.Token(t, id)))
	return gateway.New(b.URL, store)
}

func titles(posts []model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestFeedMatchesServerAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana, bob := client(t, b, "ana"), client(t, b, "bob")

	feed := NewFeedView(ana)
	assert.Equal(t, StateEmpty, feed.State())
	require.NoError(t, feed.Load(ctx))
	assert.Equal(t, StateLoaded, feed.State())
	assert.Empty(t, feed.Snapshot().Posts)

	// someone else posts in the meantime; the refetch picks it up too
	_, err := bob.CreatePost(ctx, gateway.PostInput{Title: "from bob", Body: "b", TopicID: 1})
	require.NoError(t, err)
	_, err = feed.CreatePost(ctx, gateway.PostInput{Title: "from ana", Body: "a", TopicID: 2})
	require.NoError(t, err)

	server, err := ana.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, server, feed.Snapshot().Posts)
	assert.Equal(t, []string{"from ana", "from bob"}, titles(feed.Snapshot().Posts))
}

func TestSearchEmptyStates(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")
	feed := NewFeedView(ana)

	require.NoError(t, feed.Load(ctx))
	assert.Equal(t, EmptyFeedMessage, feed.Snapshot().EmptyMessage())

	_, err := feed.CreatePost(ctx, gateway.PostInput{Title: "golang", Body: "b", TopicID: 1})
	require.NoError(t, err)
	_, err = feed.CreatePost(ctx, gateway.PostInput{Title: "lunch", Body: "b", TopicID: 1})
	require.NoError(t, err)

	require.NoError(t, feed.Search(ctx, "  golang "))
	snap := feed.Snapshot()
	assert.Equal(t, "golang", snap.Search)
	assert.Equal(t, []string{"golang"}, titles(snap.Posts))
	assert.Empty(t, snap.EmptyMessage())

	require.NoError(t, feed.Search(ctx, "haskell"))
	assert.Empty(t, feed.Snapshot().Posts)
	assert.Equal(t, EmptySearchMessage, feed.Snapshot().EmptyMessage())
	assert.NotEqual(t, EmptyFeedMessage, feed.Snapshot().EmptyMessage())

	// a new post resets the search
	_, err = feed.CreatePost(ctx, gateway.PostInput{Title: "another", Body: "b", TopicID: 1})
	require.NoError(t, err)
	assert.Empty(t, feed.SearchTerm())
	assert.Len(t, feed.Snapshot().Posts, 3)
}

func TestFailedCreateLeavesFeed(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")
	feed := NewFeedView(ana)
	_, err := feed.CreatePost(ctx, gateway.PostInput{Title: "first", Body: "b", TopicID: 1})
	require.NoError(t, err)
	require.NoError(t, feed.Search(ctx, "first"))
	before := feed.Snapshot()

	_, err = feed.CreatePost(ctx, gateway.PostInput{Title: "x", Body: "b", TopicID: 999})
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.Equal(t, before, feed.Snapshot())
	assert.Equal(t, "first", feed.SearchTerm(), "search kept when nothing was created")
	assert.Equal(t, StateLoaded, feed.State())
}

func TestPostViewLifecycle(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana, bob := client(t, b, "ana"), client(t, b, "bob")
	p, err := ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: 1})
	require.NoError(t, err)

	pv := NewPostView(ana, p.ID, WithConfirmer(Allow))
	require.NoError(t, pv.Load(ctx))
	assert.Equal(t, "t", pv.Snapshot().Post.Title)
	assert.Empty(t, pv.Snapshot().Comments)

	require.NoError(t, pv.AddComment(ctx, "one"))
	_, err = bob.CreateComment(ctx, p.ID, "two")
	require.NoError(t, err)
	require.NoError(t, pv.EditPost(ctx, gateway.PostUpdate{Title: "t2", Body: "b2"}))

	snap := pv.Snapshot()
	assert.Equal(t, "t2", snap.Post.Title)
	require.Len(t, snap.Comments, 2)
	assert.Equal(t, "two", snap.Comments[1].Body)

	require.NoError(t, pv.EditComment(ctx, snap.Comments[0].ID, "uno"))
	require.NoError(t, pv.DeleteComment(ctx, snap.Comments[0].ID))
	server, err := ana.ListComments(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, server, pv.Snapshot().Comments)

	require.NoError(t, pv.DeletePost(ctx))
	assert.Equal(t, StateEmpty, pv.State())
	assert.ErrorIs(t, pv.Load(ctx), ErrDiscarded)
	_, err = ana.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestForbiddenEditLeavesCache(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana, bob := client(t, b, "ana"), client(t, b, "bob")
	p, err := ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: 1})
	require.NoError(t, err)

	pv := NewPostView(bob, p.ID, WithConfirmer(Allow))
	require.NoError(t, pv.Load(ctx))
	before := pv.Snapshot()

	assert.ErrorIs(t, pv.EditPost(ctx, gateway.PostUpdate{Title: "x", Body: "y"}), gateway.ErrForbidden)
	assert.ErrorIs(t, pv.DeletePost(ctx), gateway.ErrForbidden)
	assert.Equal(t, before, pv.Snapshot())
	assert.Equal(t, StateLoaded, pv.State())
}

func TestCommentsFailureIsNotPartial(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")
	p, err := ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: 1})
	require.NoError(t, err)
	b.FailWith("GET /posts/"+strconv.FormatInt(p.ID, 10)+"/comments", http.StatusInternalServerError)

	pv := NewPostView(ana, p.ID)
	err = pv.Load(ctx)
	require.ErrorIs(t, err, gateway.ErrTransport)
	assert.Equal(t, StateError, pv.State())
	assert.ErrorIs(t, pv.Err(), gateway.ErrTransport)
	assert.Zero(t, pv.Snapshot().Post.ID, "post detail not shown on its own")
}

func TestRefetchFailureAfterMutation(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")
	p, err := ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: 1})
	require.NoError(t, err)
	pv := NewPostView(ana, p.ID)
	require.NoError(t, pv.Load(ctx))

	b.FailWith("GET /posts/", http.StatusBadGateway)
	err = pv.AddComment(ctx, "hello")
	var rerr *RefetchError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, gateway.ErrTransport)
	assert.Equal(t, StateError, pv.State())

	// the comment itself went through
	assert.Equal(t, 1, b.Hits("POST /posts/"+strconv.FormatInt(p.ID, 10)+"/comments"))
}

func TestTopicDeleteConflictKeepsList(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")

	asked := 0
	yes := ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		asked++
		assert.Equal(t, "Delete topic?", prompt)
		return true, nil
	})
	tv := NewTopicsView(ana, WithConfirmer(yes))
	require.NoError(t, tv.Load(ctx))
	assert.Len(t, tv.Snapshot().Topics, 5)

	topic, err := tv.Create(ctx, "Side Projects")
	require.NoError(t, err)
	assert.Equal(t, "side-projects", topic.Slug)
	assert.Equal(t, UserCreatedDescription, topic.Description)
	require.Len(t, tv.Snapshot().Topics, 6)

	_, err = ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: topic.ID})
	require.NoError(t, err)
	before := tv.Snapshot()
	err = tv.Delete(ctx, topic.ID)
	require.ErrorIs(t, err, gateway.ErrConflictOnDelete)
	assert.Equal(t, before, tv.Snapshot())
	_, still := tv.Snapshot().Find(topic.ID)
	assert.True(t, still)
	assert.Equal(t, 1, asked)

	require.NoError(t, tv.Rename(ctx, topic.ID, "Hobbies"))
	renamed, ok := tv.Snapshot().Find(topic.ID)
	require.True(t, ok)
	assert.Equal(t, "Hobbies", renamed.Title)
	assert.Equal(t, UserCreatedDescription, renamed.Description)

	empty, err := tv.Create(ctx, "Empty")
	require.NoError(t, err)
	require.NoError(t, tv.Delete(ctx, empty.ID))
	_, found := tv.Snapshot().Find(empty.ID)
	assert.False(t, found)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	b := boardtest.Start(t)
	ana := client(t, b, "ana")
	p, err := ana.CreatePost(ctx, gateway.PostInput{Title: "t", Body: "b", TopicID: 1})
	require.NoError(t, err)
	route := "DELETE /posts/" + strconv.FormatInt(p.ID, 10)

	pv := NewPostView(ana, p.ID)
	require.NoError(t, pv.Load(ctx))
	assert.ErrorIs(t, pv.DeletePost(ctx), ErrCancelled, "default confirmer says no")

	broken := ConfirmFunc(func(context.Context, string) (bool, error) { return false, errors.New("stdin closed") })
	pv = NewPostView(ana, p.ID, WithConfirmer(broken))
	assert.ErrorContains(t, pv.DeletePost(ctx), "stdin closed")

	assert.Zero(t, b.Hits(route))
	tv := NewTopicsView(ana)
	assert.ErrorIs(t, tv.Delete(ctx, 1), ErrCancelled)
	assert.Zero(t, b.Hits("DELETE /topics/1"))
}

func TestLoggedOutFeedFails(t *testing.T) {
	b := boardtest.Start(t)
	feed := NewFeedView(gateway.New(b.URL, tokenstore.NewMemoryStore()))
	err := feed.Load(context.Background())
	assert.ErrorIs(t, err, gateway.ErrAuthMissing)
	assert.Equal(t, StateError, feed.State())
}
