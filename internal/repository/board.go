package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gossipboard/gossip-client/internal/model"
)

// DefaultTopics are created by NewBoard when seeding is enabled.
var DefaultTopics = []model.Topic{
	{Title: "General", Slug: "general", Description: "General discussion"},
	{Title: "Technology", Slug: "tech", Description: "Tech talk"},
	{Title: "Career", Slug: "career", Description: "Work and career"},
	{Title: "Personal Finance", Slug: "personal_finance", Description: "Money matters"},
	{Title: "Random", Slug: "random", Description: "Anything goes"},
}

// SearchLimit caps the number of posts a search returns.
const SearchLimit = 10

type postRow struct {
	ID        int64
	Title     string
	Body      string
	UserID    int64
	TopicID   int64
	CreatedAt time.Time
}

type commentRow struct {
	ID        int64
	Body      string
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Board holds users, topics, posts and comments in memory. It is safe for
// concurrent use; every method takes the lock for its whole duration so
// multi-record operations (cascading deletes) are atomic.
type Board struct {
	mu       sync.RWMutex
	nextID   map[string]int64
	users    map[int64]model.User
	topics   map[int64]model.Topic
	posts    map[int64]postRow
	comments map[int64]commentRow
	now      func() time.Time
}

// NewBoard returns an empty board, optionally seeded with DefaultTopics.
func NewBoard(seed bool) *Board {
	b := &Board{
		nextID:   map[string]int64{},
		users:    map[int64]model.User{},
		topics:   map[int64]model.Topic{},
		posts:    map[int64]postRow{},
		comments: map[int64]commentRow{},
		now:      func() time.Time { return time.Now().UTC() },
	}
	if seed {
		for _, t := range DefaultTopics {
			t.ID = b.id("topics")
			b.topics[t.ID] = t
		}
	}
	return b
}

// id hands out the next id of a table; callers hold the write lock.
func (b *Board) id(table string) int64 {
	b.nextID[table]++
	return b.nextID[table]
}

func (b *Board) username(id int64) string {
	return b.users[id].Username
}

// live reports ctx cancellation the way a database driver would.
func live(ctx context.Context) error {
	return ctx.Err()
}
