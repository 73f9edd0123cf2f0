package models

import "time"

// User is the principal record backing authentication. Email is stored
// normalized (trimmed, lowercased) and is unique at the schema level.
type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Sanitized returns a copy with the password hash stripped. Everything that
// leaves the service layer goes through this; the hash must never appear on
// a principal representation downstream of authentication.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}
