// Package gateway is the typed client for the board's HTTP API.
//
// Every method either returns decoded entities or a *Error whose Category
// tells the caller what to do next. Raw transport errors never leave this
// package. Methods that act on behalf of a user attach the stored
// credential as a bearer token and fail with ErrAuthMissing, without any
// I/O, when there is none.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gossipboard/gossip-client/internal/tokenstore"
)

// DefaultTimeout bounds each request when no http.Client is supplied.
const DefaultTimeout = 15 * time.Second

const maxResponseBytes = 4 << 20

// CredentialSource supplies the bearer credential. tokenstore.Store
// satisfies it.
type CredentialSource interface {
	Get(ctx context.Context) (string, error)
}

type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

// Client talks to one board backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
	log        *slog.Logger
	validate   *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger; requests are logged at debug level and
// failures at warn.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for baseURL (e.g. "http://localhost:8080").
func New(baseURL string, creds CredentialSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		creds:      creds,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:   newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request describes one round trip.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	auth   authMode
	body   any
	out    any
	// credentials marks login/signup, where 401/403 mean bad input.
	credentials bool
}

func (c *Client) do(ctx context.Context, r request) error {
	fail := func(cat Category, status int, msg string, cause error) error {
		e := &Error{Category: cat, Op: r.op, Status: status, Message: msg, Err: cause}
		c.log.Warn("gateway call failed", "op", r.op, "category", string(cat), "status", status, "error", e.Error())
		return e
	}

	var token string
	if r.auth != authNone {
		t, err := c.creds.Get(ctx)
		switch {
		case err == nil:
			token = t
		case errors.Is(err, tokenstore.ErrNoCredential):
			if r.auth == authRequired {
				return fail(CategoryAuthMissing, 0, "", nil)
			}
		case r.auth == authOptional:
			c.log.Warn("credential unreadable, continuing without it", "op", r.op, "error", err)
		default:
			return fail(CategoryTransport, 0, "read credential", err)
		}
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return fail(CategoryTransport, 0, "encode request", err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fail(CategoryTransport, 0, "build request", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(CategoryTransport, 0, "backend unreachable", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.log.Debug("gateway call", "op", r.op, "method", r.method, "path", r.path,
		"status", resp.StatusCode, "request_id", reqID, "elapsed", time.Since(start))
	if err != nil {
		return fail(CategoryTransport, resp.StatusCode, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cat := classify(r.method, resp.StatusCode, r.credentials)
		return fail(cat, resp.StatusCode, errorMessage(payload), nil)
	}
	if r.out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, r.out); err != nil {
		return fail(CategoryTransport, resp.StatusCode, "malformed response", err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} (or {"message": "..."}) from an
// error body, tolerating bodies that are neither.
func errorMessage(payload []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return ""
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
