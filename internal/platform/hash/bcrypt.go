// Package hash provides the bcrypt-backed password hasher.
package hash

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when no cost is configured.
const DefaultCost = 10

// Bcrypt hashes and verifies passwords using bcrypt.
// Each Hash call embeds a fresh random salt, so hashing the same password
// twice yields different outputs.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given work factor.
// Costs outside bcrypt's valid range fall back to DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether the plaintext password matches the stored hash.
// Any mismatch, including a malformed stored hash, yields false rather
// than an error: a corrupt record must read as "does not match".
func (b *Bcrypt) Check(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
