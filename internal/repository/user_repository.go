package repository

import (
	"context"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/utils"
)

// CreateUser hashes password and stores a new user, returning its id.
// Usernames and emails are unique; emails compare case-insensitively.
func (b *Board) CreateUser(ctx context.Context, username, email, password string, cost int) (int64, error) {
	if err := live(ctx); err != nil {
		return 0, err
	}
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	// hash outside the lock, bcrypt is slow on purpose
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if u.Email == email || strings.EqualFold(u.Username, username) {
			return 0, ErrDuplicate
		}
	}
	u := model.User{
		ID:           b.id("users"),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    b.now(),
	}
	b.users[u.ID] = u
	return u.ID, nil
}

// UserByEmail fetches a user by normalized email.
func (b *Board) UserByEmail(ctx context.Context, email string) (model.User, error) {
	if err := live(ctx); err != nil {
		return model.User{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, u := range b.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// UserByID fetches a user by id.
func (b *Board) UserByID(ctx context.Context, id int64) (model.User, error) {
	if err := live(ctx); err != nil {
		return model.User{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	u, ok := b.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}
