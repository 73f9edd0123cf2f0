// Package hashing provides one-way password hashing for credential storage.
package hashing

// PasswordHasher abstracts the digest algorithm so services do not depend
// on a concrete implementation.
type PasswordHasher interface {
	// Hash produces a salted digest of the password. Two calls with the
	// same password yield different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest. It never
	// errors: malformed digests simply fail verification.
	Verify(password, digest string) bool
}
