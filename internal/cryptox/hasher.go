// Package cryptox provides one-way password hashing.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
)

// DefaultCost is the bcrypt work factor used for stored credentials.
const DefaultCost = 12

// Hasher turns a plaintext password into a salted one-way hash and checks
// a candidate against it.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside
// bcrypt's accepted range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int { return h.cost }

// Hash returns the bcrypt hash of plaintext in the $2a$ format.
// Passwords longer than 72 bytes are rejected with a validation error.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	pw := []byte(plaintext)
	defer common.WipeByteArray(pw)

	out, err := bcrypt.GenerateFromPassword(pw, h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.NewValidationError("password", "longer than 72 bytes")
		}
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	pw := []byte(plaintext)
	defer common.WipeByteArray(pw)

	return bcrypt.CompareHashAndPassword([]byte(hash), pw) == nil
}
