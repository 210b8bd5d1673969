package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossipboard/gossip-client/internal/boardtest"
	"github.com/gossipboard/gossip-client/internal/view"
)

type cli struct {
	t         *testing.T
	backend   *boardtest.Backend
	tokenFile string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	b := boardtest.Start(t)
	file := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("GOSSIP_API_URL", b.URL)
	t.Setenv("GOSSIP_TOKEN_STORE", "file")
	t.Setenv("GOSSIP_TOKEN_FILE", file)
	t.Setenv("GOSSIP_LOG_LEVEL", "error")
	return &cli{t: t, backend: b, tokenFile: file}
}

// run executes one gossip invocation with stdin and returns its output.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	_, err := execute(args, func(cmd *cobra.Command) {
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		cmd.SetIn(strings.NewReader(stdin))
	})
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run("", args...)
	require.NoError(c.t, err, out)
	return out
}

func (c *cli) login(name string) {
	c.t.Helper()
	_, email := c.backend.User(c.t, name)
	c.mustRun("login", "--email", email, "--password", boardtest.Password)
}

func TestSignupLoginAndPost(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("signup", "--username", "alice", "--email", "alice@example.com", "--password", "pw")
	assert.Contains(t, out, "Account created")

	out, err := c.run("pw\n", "login", "--email", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as user")
	assert.FileExists(t, c.tokenFile)

	out = c.mustRun("post", "create", "--title", "Hello board", "--body", "first words", "--topic", "tech")
	assert.Contains(t, out, "Posted #1.")
	assert.Contains(t, out, "Hello board")
	assert.Contains(t, out, "[Technology]")
	assert.Contains(t, out, "yours: edit/delete available")

	out = c.mustRun("feed")
	assert.Contains(t, out, "Hello board")
	assert.Contains(t, out, "by alice")
}

func TestLoginFailureStoresNothing(t *testing.T) {
	c := newCLI(t)
	_, email := c.backend.User(t, "bob")

	_, err := c.run("", "login", "--email", email, "--password", "wrong")
	require.Error(t, err)
	assert.NoFileExists(t, c.tokenFile)

	out := c.mustRun("whoami")
	assert.Contains(t, out, "anonymous")
}

func TestFeedWithoutSessionAsksForLogin(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "feed")
	require.ErrorIs(t, err, errLogin)
	assert.Zero(t, c.backend.Hits("GET /posts"))
}

func TestSearchWithoutMatches(t *testing.T) {
	c := newCLI(t)
	c.login("carol")
	c.mustRun("post", "create", "--title", "cats", "--body", "meow")

	out := c.mustRun("feed", "--search", "dogs")
	assert.Contains(t, out, view.EmptySearchMessage)

	out = c.mustRun("feed", "--search", "CAT")
	assert.Contains(t, out, "cats")
}

func TestOthersPostCannotBeDeleted(t *testing.T) {
	c := newCLI(t)
	c.login("dave")
	c.mustRun("post", "create", "--title", "mine", "--body", "text")
	c.mustRun("logout")

	c.login("erin")
	out := c.mustRun("post", "show", "1")
	assert.Contains(t, out, "mine")
	assert.NotContains(t, out, "yours")

	_, err := c.run("", "post", "delete", "1", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not yours")
	assert.Zero(t, c.backend.Hits("DELETE /posts/1"))
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	c := newCLI(t)
	c.login("frank")
	c.mustRun("post", "create", "--title", "keep me", "--body", "text")

	out, err := c.run("n\n", "post", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Zero(t, c.backend.Hits("DELETE /posts/1"))

	out, err = c.run("y\n", "post", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Post #1 deleted.")
	assert.Equal(t, 1, c.backend.Hits("DELETE /posts/1"))
}

func TestCommentLifecycle(t *testing.T) {
	c := newCLI(t)
	c.login("gina")
	c.mustRun("post", "create", "--title", "thread", "--body", "start")

	out := c.mustRun("comment", "add", "1", "first reply")
	assert.Contains(t, out, "Comments (1)")
	assert.Contains(t, out, "first reply")

	out = c.mustRun("comment", "edit", "1", "1", "edited reply")
	assert.Contains(t, out, "edited reply")

	out = c.mustRun("comment", "delete", "1", "1", "--yes")
	assert.Contains(t, out, "Comments (0)")

	_, err := c.run("", "comment", "delete", "1", "9", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no comment #9")
}

func TestTopicInUseCannotBeDeleted(t *testing.T) {
	c := newCLI(t)
	c.login("hank")

	out := c.mustRun("topic", "create", "Gardening")
	assert.Contains(t, out, "Gardening")
	assert.Contains(t, out, "(gardening)")

	c.mustRun("post", "create", "--title", "tomatoes", "--body", "red", "--topic", "gardening")

	_, err := c.run("", "topic", "delete", "6", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete")
}

func TestRejectedSessionIsCleared(t *testing.T) {
	c := newCLI(t)
	id, _ := c.backend.User(t, "ivy")
	require.NoError(t, os.WriteFile(c.tokenFile, []byte(`{"token":"`+c.backend.ExpiredToken(t, id)+`"}`), 0o600))

	_, err := c.run("", "whoami", "--remote")
	require.ErrorIs(t, err, errLogin)

	out := c.mustRun("whoami")
	assert.Contains(t, out, "anonymous")
}

func TestCorruptSessionFileDoesNotLockOut(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.WriteFile(c.tokenFile, []byte("{truncated"), 0o600))

	out := c.mustRun("topic", "list")
	assert.Contains(t, out, "General")

	c.login("jane")
	out = c.mustRun("whoami")
	assert.Contains(t, out, "user ")

	require.NoError(t, os.WriteFile(c.tokenFile, []byte("{truncated"), 0o600))
	c.mustRun("logout")
	assert.NoFileExists(t, c.tokenFile)
}

func TestFailedCommandClosesRedisStore(t *testing.T) {
	c := newCLI(t)
	s := miniredis.RunT(t)
	t.Setenv("GOSSIP_TOKEN_STORE", "redis")
	t.Setenv("REDIS_ADDR", s.Addr())

	a, err := execute([]string{"feed"}, func(cmd *cobra.Command) {
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
	})
	require.ErrorIs(t, err, errLogin)
	assert.Zero(t, c.backend.Hits("GET /posts"))

	_, err = a.store.Get(context.Background())
	assert.ErrorIs(t, err, redis.ErrClosed)
}
