package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and is used only at the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the username/password pair submitted by a client
// during login or registration. The password travels in plaintext over the
// transport and is hashed server-side before storage.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is the public view of an authenticated user, as returned by
// GET /api/auth/me. It intentionally carries no credential material.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
