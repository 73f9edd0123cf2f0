package hashing

import "golang.org/x/crypto/bcrypt"

// Bcrypt implements PasswordHasher with an adaptive, cost-parameterized
// digest. The salt is generated internally and embedded in the digest
// string, so no separate salt storage is needed.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher. cost <= 0 selects bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (h *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify runs the constant-time bcrypt comparison. A digest that cannot be
// parsed is treated the same as a mismatch.
func (h *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
