// Package common defines shared constants and sentinel errors used across
// the AntilleanController auth subsystem. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration/login errors. ErrInvalidCredentials deliberately covers
	// both "no such user" and "wrong password" so the login endpoint does
	// not reveal whether an email is registered.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Credential codec errors.
	ErrInvalidEnvelope = errors.New("invalid encrypted credential")
	ErrBadKeyLength    = errors.New("encryption key must decode to 16, 24 or 32 bytes")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
