// Package crypto holds the password hashing implementation behind
// ports.CredentialVerifier.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier hashes with bcrypt, which salts every hash and compares in
// constant time.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier using cost, or bcrypt.DefaultCost when
// cost is outside bcrypt's accepted range.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
