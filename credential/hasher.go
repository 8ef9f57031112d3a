package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords for storage and verifies candidates against
// stored hashes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Hash must salt per call: hashing the same password twice yields
//   different outputs.
// - Verify must run in time independent of where the candidate
//   diverges from the stored password.
type Hasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) ([]byte, error)

	// Verify reports whether the candidate password matches the hash.
	Verify(password string, hash []byte) bool
}

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost.
// Cost 0 (or anything below bcrypt.MinCost) selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash. The salt is generated per call,
// so identical passwords produce distinct hashes.
func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("credential: hash password: %w", err)
	}
	return hash, nil
}

// Verify compares the candidate against the stored hash in constant
// time.
func (h *BcryptHasher) Verify(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Ensure BcryptHasher implements Hasher
var _ Hasher = (*BcryptHasher)(nil)
