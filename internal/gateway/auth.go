package gateway

import (
	"context"
	"net/http"
	"strings"
)

// Login exchanges email and password for a credential. Wrong credentials
// are ErrValidationFailed. The credential is returned, not stored; storing
// it is the session's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := loginInput{Email: strings.TrimSpace(email), Password: password}
	if err := c.check("Login", in); err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, request{
		op: "Login", method: http.MethodPost, path: "/login",
		body: in, out: &out, credentials: true,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &Error{Category: CategoryTransport, Op: "Login", Status: http.StatusOK, Message: "response carried no token"}
	}
	return out.Token, nil
}

// Signup registers a new account. A taken username or email comes back as
// ErrValidationFailed.
func (c *Client) Signup(ctx context.Context, in SignupInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := c.check("Signup", in); err != nil {
		return err
	}
	return c.do(ctx, request{
		op: "Signup", method: http.MethodPost, path: "/signup",
		body: in, credentials: true,
	})
}

// Validate asks the backend whether the stored credential is still
// accepted. It returns nil, ErrAuthMissing or ErrAuthRejected in the
// common cases.
func (c *Client) Validate(ctx context.Context) error {
	return c.do(ctx, request{
		op: "Validate", method: http.MethodGet, path: "/validate", auth: authRequired,
	})
}
