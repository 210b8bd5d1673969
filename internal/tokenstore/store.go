// Package tokenstore keeps the bearer credential between runs.
//
// A Store holds exactly one credential under a single well-known key. It is
// written on login, read by the gateway (outbound Authorization) and the
// identity resolver (inbound identity), and cleared on logout or when the
// backend rejects the credential. No expiry is checked here.
package tokenstore

import (
	"context"
	"errors"
)

// Key is the well-known name the credential is stored under.
const Key = "token"

// ErrNoCredential is returned by Get when nothing is stored.
var ErrNoCredential = errors.New("no credential stored")

// Store is the credential holder.
type Store interface {
	// Set replaces the stored credential.
	Set(ctx context.Context, credential string) error
	// Get returns the stored credential or ErrNoCredential.
	Get(ctx context.Context) (string, error)
	// Clear removes the credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

var errEmptyCredential = errors.New("empty credential")
