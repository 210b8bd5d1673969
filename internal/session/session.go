// Package session ties the credential store, the identity resolver and the
// gateway's auth calls into one injectable object. There is no global
// session; every caller that needs one is handed it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gossipboard/gossip-client/internal/auth"
	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/tokenstore"
)

// Authenticator is the part of the gateway the session drives.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, in gateway.SignupInput) error
	Validate(ctx context.Context) error
}

// Action tells the UI layer how to recover from a failure.
type Action int

const (
	// ActionNone: nothing failed.
	ActionNone Action = iota
	// ActionNotify: show the error and stay where you are.
	ActionNotify
	// ActionLogin: send the user to the login entry point.
	ActionLogin
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionNotify:
		return "notify"
	case ActionLogin:
		return "login"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Session is the signed-in state of one client.
type Session struct {
	store    tokenstore.Store
	resolver *auth.Resolver
	gw       Authenticator
	log      *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New returns a Session over store that authenticates through gw.
func New(store tokenstore.Store, gw Authenticator, opts ...Option) *Session {
	s := &Session{
		store:    store,
		resolver: auth.NewResolver(),
		gw:       gw,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the credential store, which is also the gateway's
// credential source.
func (s *Session) Store() tokenstore.Store { return s.store }

// Login exchanges email and password for a credential and stores it. On
// failure nothing is stored and any previous credential is kept.
func (s *Session) Login(ctx context.Context, email, password string) (model.Identity, error) {
	token, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return model.Anonymous, err
	}
	if err := s.store.Set(ctx, token); err != nil {
		return model.Anonymous, fmt.Errorf("store credential: %w", err)
	}
	id := s.resolver.Resolve(token)
	s.log.Info("signed in", "identity", id.String())
	return id, nil
}

// Signup registers an account. The new user still has to log in.
func (s *Session) Signup(ctx context.Context, in gateway.SignupInput) error {
	return s.gw.Signup(ctx, in)
}

// Logout forgets the credential.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.log.Info("signed out")
	return nil
}

// CurrentUserID returns the identity carried by the stored credential, or
// model.Anonymous. Store and decode failures are not reported.
func (s *Session) CurrentUserID(ctx context.Context) model.Identity {
	token, err := s.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNoCredential) {
			s.log.Warn("read credential", "error", err)
		}
		return model.Anonymous
	}
	return s.resolver.Resolve(token)
}

// SignedIn reports whether a readable credential is stored.
func (s *Session) SignedIn(ctx context.Context) bool {
	return s.CurrentUserID(ctx).Valid
}

// CanMutate reports whether edit and delete should be offered for r.
func (s *Session) CanMutate(ctx context.Context, r model.Owned) bool {
	return auth.CanMutate(s.CurrentUserID(ctx), r)
}

// Verify asks the backend whether the stored credential is still accepted
// and applies Recover to the outcome.
func (s *Session) Verify(ctx context.Context) (Action, error) {
	err := s.gw.Validate(ctx)
	return s.Recover(ctx, err), err
}

// Recover maps a gateway error to the UI's next step. A rejected
// credential is cleared before ActionLogin is returned.
func (s *Session) Recover(ctx context.Context, err error) Action {
	if err == nil {
		return ActionNone
	}
	switch gateway.CategoryOf(err) {
	case gateway.CategoryAuthMissing:
		return ActionLogin
	case gateway.CategoryAuthRejected:
		s.dropCredential(ctx)
		return ActionLogin
	}
	return ActionNotify
}

// RecoverFetch is Recover for a failed view fetch: whatever the cause, the
// user is sent to login.
func (s *Session) RecoverFetch(ctx context.Context, err error) Action {
	if err == nil {
		return ActionNone
	}
	s.Recover(ctx, err)
	return ActionLogin
}

func (s *Session) dropCredential(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn("clear rejected credential", "error", err)
		return
	}
	s.log.Info("credential rejected by backend, signed out")
}
