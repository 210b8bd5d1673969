package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Category is the failure class every gateway error falls into. Callers
// branch on the category, never on transport details.
type Category string

const (
	CategoryAuthMissing      Category = "auth_missing"
	CategoryAuthRejected     Category = "auth_rejected"
	CategoryForbidden        Category = "forbidden"
	CategoryNotFound         Category = "not_found"
	CategoryValidationFailed Category = "validation_failed"
	CategoryConflictOnDelete Category = "conflict_on_delete"
	CategoryTransport        Category = "transport_or_unknown"
)

// Sentinels for errors.Is. A *Error matches the sentinel of its category.
var (
	// ErrAuthMissing: the call needs a credential and none is stored.
	ErrAuthMissing = errors.New("not signed in")
	// ErrAuthRejected: the backend refused the credential (expired, revoked, forged).
	ErrAuthRejected = errors.New("credential rejected")
	// ErrForbidden: signed in, but the backend refused this action on this resource.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound: the addressed resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidationFailed: the input was refused, locally or by the backend.
	ErrValidationFailed = errors.New("validation failed")
	// ErrConflictOnDelete: the delete is blocked by dependent records.
	ErrConflictOnDelete = errors.New("delete blocked by existing references")
	// ErrTransport: network failure, server error or an unreadable response.
	ErrTransport = errors.New("request failed")
)

var sentinels = map[Category]error{
	CategoryAuthMissing:      ErrAuthMissing,
	CategoryAuthRejected:     ErrAuthRejected,
	CategoryForbidden:        ErrForbidden,
	CategoryNotFound:         ErrNotFound,
	CategoryValidationFailed: ErrValidationFailed,
	CategoryConflictOnDelete: ErrConflictOnDelete,
	CategoryTransport:        ErrTransport,
}

// Error is returned by every Client method on failure.
type Error struct {
	Category Category
	Op       string // client method, e.g. "DeleteTopic"
	Status   int    // HTTP status; 0 when no response was received
	Message  string // backend's error text or a local explanation
	Err      error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = sentinels[e.Category].Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, msg, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Is matches the category sentinel.
func (e *Error) Is(target error) bool {
	return sentinels[e.Category] == target
}

func (e *Error) Unwrap() error { return e.Err }

// CategoryOf returns the category of err, or CategoryTransport for errors
// that did not come from the gateway.
func CategoryOf(err error) Category {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Category
	}
	return CategoryTransport
}

// classify maps a non-2xx response to a category. Login and signup answer
// bad credentials with 401/403, which is a validation problem there and not
// a rejected session.
func classify(method string, status int, credentialsCall bool) Category {
	switch status {
	case http.StatusUnauthorized:
		if credentialsCall {
			return CategoryValidationFailed
		}
		return CategoryAuthRejected
	case http.StatusForbidden:
		if credentialsCall {
			return CategoryValidationFailed
		}
		return CategoryForbidden
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusConflict:
		if method == http.MethodDelete {
			return CategoryConflictOnDelete
		}
		return CategoryValidationFailed
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CategoryValidationFailed
	}
	return CategoryTransport
}
