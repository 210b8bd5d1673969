// Package view holds the client's per-screen caches.
//
// A view owns one snapshot of backend data and rebuilds it by refetching
// after every mutation; snapshots are replaced whole and never patched.
// Each load runs under a generation number, and a result whose generation
// is no longer current (a newer load started, or the view was discarded by
// navigation) is dropped without touching the view.
package view

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// State is where a view is in its load cycle.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrDiscarded is returned by operations on a view that navigation has
// already left.
var ErrDiscarded = errors.New("view discarded")

// ErrStale is returned by a load whose result arrived after a newer load
// started or the view was discarded. The result was not applied.
var ErrStale = errors.New("stale result discarded")

// RefetchError reports a mutation that succeeded on the backend but whose
// follow-up fetch failed. The view is in StateError.
type RefetchError struct {
	Err error
}

func (e *RefetchError) Error() string { return "refresh after change: " + e.Err.Error() }

func (e *RefetchError) Unwrap() error { return e.Err }

// Option configures a view.
type Option func(*options)

type options struct {
	log     *slog.Logger
	confirm Confirmer
}

// WithLogger sets the logger for stale-result and refetch messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithConfirmer sets who is asked before a delete.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) { o.confirm = c }
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil)), confirm: Deny}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cache is the state machine shared by all views.
type cache[T any] struct {
	name string
	log  *slog.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	discarded bool
	snap      T
	err       error
}

// begin starts a load and returns its generation.
func (c *cache[T]) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.discarded {
		return 0, ErrDiscarded
	}
	c.gen++
	c.state = StateLoading
	return c.gen, nil
}

// finish applies the outcome of load gen unless it is stale.
func (c *cache[T]) finish(gen uint64, snap T, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.discarded || gen != c.gen {
		c.log.Debug("dropping stale result", "view", c.name, "generation", gen, "current", c.gen)
		return ErrStale
	}
	if err != nil {
		c.state = StateError
		c.err = err
		return err
	}
	c.snap, c.err = snap, nil
	c.state = StateLoaded
	return nil
}

// discard invalidates every load in flight and empties the view for good.
func (c *cache[T]) discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.gen++
	c.discarded = true
	c.state = StateEmpty
	c.snap = zero
	c.err = nil
}

func (c *cache[T]) alive() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.discarded {
		return ErrDiscarded
	}
	return nil
}

// State returns the view's current state.
func (c *cache[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error of the last failed load, if the view is in
// StateError.
func (c *cache[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Snapshot returns the last successfully loaded data. It is the zero value
// until the first load succeeds; a failed load keeps the previous one.
func (c *cache[T]) Snapshot() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// refreshed turns the error of a post-mutation reload into a RefetchError.
func refreshed(err error) error {
	if err == nil || errors.Is(err, ErrStale) || errors.Is(err, ErrDiscarded) {
		return nil
	}
	return &RefetchError{Err: err}
}
