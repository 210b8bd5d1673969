package view

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled is returned by a delete the user did not confirm. Nothing
// was sent to the backend.
var ErrCancelled = errors.New("cancelled")

// Confirmer asks the user a yes/no question before a destructive call.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Deny refuses everything; it is the default so no view deletes without a
// Confirmer being configured.
var Deny Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })

// Allow accepts everything, for non-interactive callers that confirmed up
// front (e.g. a --yes flag).
var Allow Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

func confirmed(ctx context.Context, c Confirmer, prompt string) error {
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
