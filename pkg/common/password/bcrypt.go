// Package password hashes user secrets with salted bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// Hasher hashes and verifies secrets.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

// BcryptHasher salts every hash independently, so equal secrets never share a hash.
type BcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher clamps cost to bcrypt's valid range; 0 selects DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	h := &BcryptHasher{cost: cost}
	// Error ignored: prehashed input is always 44 bytes.
	h.dummyHash, _ = bcrypt.GenerateFromPassword(prehash("dummy-password"), cost)
	return h
}

// Cost returns the effective bcrypt cost.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Burn runs one comparison against a throwaway hash. Callers use it when the
// account does not exist, so that path costs the same as a wrong secret.
func (h *BcryptHasher) Burn(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, prehash(plain))
}

// prehash keeps bcrypt input under its 72 byte limit for any allowed secret.
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

var _ Hasher = (*BcryptHasher)(nil)
