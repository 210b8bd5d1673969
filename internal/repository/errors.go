// Package repository is the board backend's in-memory data layer. The
// sentinel errors below let handlers map failures to status codes without
// knowing how records are stored.
package repository

import "errors"

// ErrNotFound is returned when the addressed record does not exist.
// Handlers translate it into 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// record they do not own. Handlers translate it into 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete cannot proceed because other
// records still depend on the target (e.g. a topic that has posts).
// Handlers translate it into 409.
var ErrConflict = errors.New("conflict")

// ErrDuplicate is returned when a unique field (username, email, topic
// slug) is already taken. Handlers translate it into 409.
var ErrDuplicate = errors.New("already exists")
