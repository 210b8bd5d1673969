package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gossipboard/gossip-client/internal/config"
	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/session"
	"github.com/gossipboard/gossip-client/internal/tokenstore"
	"github.com/gossipboard/gossip-client/internal/view"
)

// errLogin is returned when the user has to sign in before continuing.
var errLogin = errors.New("not signed in or session expired; run `gossip login`")

// app is the state shared by all commands of one invocation.
type app struct {
	// flags
	apiURL    string
	storeKind string
	ephemeral bool
	yes       bool

	cfg     config.Config
	log     *slog.Logger
	store   tokenstore.Store
	closers []io.Closer
	gw      *gateway.Client
	sess    *session.Session
	nav     view.Navigator
	in      *bufio.Reader
	out     io.Writer
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	a.cfg = config.Load()
	if a.apiURL != "" {
		a.cfg.APIURL = a.apiURL
	}
	if a.storeKind != "" {
		a.cfg.TokenStore = a.storeKind
	}
	if a.ephemeral {
		a.cfg.TokenStore = config.StoreMemory
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.out = cmd.OutOrStdout()
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.LogLevel}))

	store, err := a.openStore(cmd.Context())
	if err != nil {
		return err
	}
	a.store = store
	a.gw = gateway.New(a.cfg.APIURL, store,
		gateway.WithTimeout(a.cfg.HTTPTimeout),
		gateway.WithLogger(a.log))
	a.sess = session.New(store, a.gw, session.WithLogger(a.log))
	return nil
}

func (a *app) openStore(ctx context.Context) (tokenstore.Store, error) {
	switch a.cfg.TokenStore {
	case config.StoreMemory:
		return tokenstore.NewMemoryStore(), nil
	case config.StoreRedis:
		client, err := config.NewRedisClient(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		s := tokenstore.NewRedisStore(client, a.cfg.Redis.Prefix)
		a.closers = append(a.closers, s)
		return s, nil
	}
	return tokenstore.NewFileStore(a.cfg.TokenFile), nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("close", "error", err)
		}
	}
	a.closers = nil
}

func (a *app) confirmer() view.Confirmer {
	if a.yes {
		return view.Allow
	}
	return lineConfirmer{in: a.in, out: a.out}
}

func (a *app) viewOpts() []view.Option {
	return []view.Option{view.WithLogger(a.log), view.WithConfirmer(a.confirmer())}
}

func (a *app) canMutate(ctx context.Context) func(model.Owned) bool {
	return func(r model.Owned) bool { return a.sess.CanMutate(ctx, r) }
}

// fetchFailed applies the view-fetch policy: any failed load sends the user
// to login.
func (a *app) fetchFailed(ctx context.Context, err error) error {
	if errors.Is(err, view.ErrStale) || errors.Is(err, view.ErrDiscarded) {
		return nil
	}
	a.sess.RecoverFetch(ctx, err)
	return fmt.Errorf("%w (%v)", errLogin, err)
}

// failed applies the recovery policy to a failed action.
func (a *app) failed(ctx context.Context, err error) error {
	var rerr *view.RefetchError
	if errors.As(err, &rerr) {
		return a.fetchFailed(ctx, rerr.Err)
	}
	if errors.Is(err, view.ErrCancelled) {
		fmt.Fprintln(a.out, styles.Muted.Render("Cancelled."))
		return nil
	}
	switch a.sess.Recover(ctx, err) {
	case session.ActionLogin:
		return errLogin
	case session.ActionNotify:
		return friendly(err)
	}
	return nil
}

// friendly words a gateway error for the terminal.
func friendly(err error) error {
	switch gateway.CategoryOf(err) {
	case gateway.CategoryConflictOnDelete:
		return fmt.Errorf("cannot delete, other content still depends on it: %w", err)
	case gateway.CategoryForbidden:
		return fmt.Errorf("you can only change your own content: %w", err)
	case gateway.CategoryNotFound:
		return fmt.Errorf("it no longer exists: %w", err)
	case gateway.CategoryValidationFailed:
		return err
	}
	return fmt.Errorf("something went wrong, try again: %w", err)
}

func (a *app) done(msg string) {
	fmt.Fprintln(a.out, styles.Success.Render(msg))
}
