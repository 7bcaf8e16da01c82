package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the stable unique identifier of the account (UUID string,
	// assigned at signup). It is carried as the "sub" claim of issued tokens.
	UserID string `json:"id"`

	// Email is the unique contact identifier of the account.
	// It is lower-cased before both storage and lookup so that two addresses
	// differing only in case never coexist.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for identities provisioned by an external identity mechanism.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account carries a credential record and is
// therefore eligible for email/password login.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
