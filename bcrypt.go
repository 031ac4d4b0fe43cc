package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is the work factor used when none is configured.
	DefaultBcryptCost = 14
	// MinBcryptCost is the floor for the configurable work factor.
	MinBcryptCost = 10
)

// Hasher derives and verifies password hashes. Hash embeds a fresh random
// salt in its output so Verify only needs the stored hash and the candidate
// password.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// BcryptHasher implements Hasher on top of bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher with the given work factor. A zero cost
// selects DefaultBcryptCost; anything below MinBcryptCost is raised to it.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash will generate a salted password hash
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(out), err
}

// Verify reports whether the cleartext password matches the stored hash.
// A mismatch is (false, nil); an error means the hash could not be
// processed at all and callers must treat it as an internal failure, never
// as a bad password.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
