package model

import "time"

// User represents a board account as the development backend keeps it.
// The client never sees PasswordHash; it only learns a user's ID through
// the credential's sub claim and a user's name through AuthorName fields.
//
// Fields:
//
//	ID           – numeric identifier, carried as the JWT subject.
//	Username     – unique display handle.
//	Email        – unique login address (stored lower-cased).
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
type User struct {
	ID           int64     // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
