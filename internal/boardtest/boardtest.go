// Package boardtest starts the in-memory board backend behind an
// httptest.Server for tests of the client packages.
package boardtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gossipboard/gossip-client/internal/config"
	"github.com/gossipboard/gossip-client/internal/repository"
	"github.com/gossipboard/gossip-client/internal/router"
	"github.com/gossipboard/gossip-client/internal/utils"
)

// Secret signs every token the test backend issues.
const Secret = "boardtest-secret"

// Password is the password of every user created by User.
const Password = "correct horse"

// Backend is a running test backend.
type Backend struct {
	URL   string
	Board *repository.Board

	mu    sync.Mutex
	fails map[string]int // "METHOD /path" prefix -> status
	hits  map[string]int
}

// Start runs a seeded backend until the test ends.
func Start(t testing.TB) *Backend {
	t.Helper()
	cfg := config.ServerConfig{
		Env:        "test",
		JWTSecret:  Secret,
		AccessTTL:  time.Hour,
		BcryptCost: bcrypt.MinCost,
		SeedTopics: true,
	}
	b := &Backend{
		Board: repository.NewBoard(true),
		fails: map[string]int{},
		hits:  map[string]int{},
	}
	e := router.New(cfg, b.Board, nil)
	srv := httptest.NewServer(b.intercept(e))
	t.Cleanup(srv.Close)
	b.URL = srv.URL
	return b
}

// FailWith makes requests whose "METHOD /path" starts with prefix answer
// status with an error body.
func (b *Backend) FailWith(prefix string, status int) {
	b.mu.Lock()
	b.fails[prefix] = status
	b.mu.Unlock()
}

// Hits counts requests whose "METHOD /path" equals route.
func (b *Backend) Hits(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func (b *Backend) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[route]++
		status := 0
		for prefix, s := range b.fails {
			if strings.HasPrefix(route, prefix) {
				status = s
			}
		}
		b.mu.Unlock()
		if status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"injected failure"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// User creates an account and returns its id and email. The password is
// Password.
func (b *Backend) User(t testing.TB, username string) (int64, string) {
	t.Helper()
	email := username + "@example.com"
	id, err := b.Board.CreateUser(context.Background(), username, email, Password, bcrypt.MinCost)
	require.NoError(t, err)
	return id, email
}

// Token returns a valid credential for userID.
func (b *Backend) Token(t testing.TB, userID int64) string {
	t.Helper()
	tok, err := utils.NewAccessToken(Secret, userID, time.Hour)
	require.NoError(t, err)
	return tok.Token
}

// ExpiredToken returns a correctly signed credential the backend refuses.
func (b *Backend) ExpiredToken(t testing.TB, userID int64) string {
	t.Helper()
	tok, err := utils.NewAccessToken(Secret, userID, -time.Minute)
	require.NoError(t, err)
	return tok.Token
}
