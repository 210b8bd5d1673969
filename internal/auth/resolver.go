// Package auth derives the current identity from the stored credential and
// decides which content that identity may offer to edit.
//
// Trust boundary: nothing in this package verifies a signature. The payload
// of the bearer token is decoded and read as-is, so a user can forge any
// identity they like locally. That is acceptable only because the result
// gates UI affordances (whether edit/delete is offered) and nothing else;
// the backend re-checks ownership on every mutating request.
package auth

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gossipboard/gossip-client/internal/model"
)

// Resolver turns a credential into an Identity without contacting the
// server. The last decoded credential is memoized, so one credential
// always yields the same Identity for as long as it is stored.
type Resolver struct {
	parser *jwt.Parser

	mu        sync.Mutex
	lastToken string
	lastID    model.Identity
}

// NewResolver returns a ready Resolver.
func NewResolver() *Resolver {
	return &Resolver{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// Resolve returns the identity named by the credential's sub claim, or
// model.Anonymous when the credential is empty or cannot be read. It never
// fails.
func (r *Resolver) Resolve(token string) model.Identity {
	if token == "" {
		return model.Anonymous
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == r.lastToken {
		return r.lastID
	}
	id := r.decode(token)
	r.lastToken, r.lastID = token, id
	return id
}

// decode reads only the payload segment. Header and signature must be
// present for the token to have the right shape but are otherwise ignored.
func (r *Resolver) decode(token string) model.Identity {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return model.Anonymous
	}
	// Accept the standard alphabet too; JWTs use base64url but some issuers
	// get it wrong.
	seg := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])
	payload, err := r.parser.DecodeSegment(seg)
	if err != nil {
		return model.Anonymous
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	claims := jwt.MapClaims{}
	if err := dec.Decode(&claims); err != nil {
		return model.Anonymous
	}
	id, ok := subjectID(claims["sub"])
	if !ok {
		return model.Anonymous
	}
	return model.KnownUser(id)
}

// subjectID accepts an integral JSON number or a decimal string.
func subjectID(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	}
	return 0, false
}
