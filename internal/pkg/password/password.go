// Package password isolates the hashing algorithm from the account
// flow so the legacy fallback can be removed without touching callers.
package password

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt.
//
// AllowLegacyPlaintext is a migration shim for rows written before
// hashing was introduced: when set, Verify falls back to comparing the
// plaintext against the stored value directly if the bcrypt check
// fails. It is a security liability and stays off unless explicitly
// enabled in config; delete it once every legacy row has been rehashed.
type Hasher struct {
	AllowLegacyPlaintext bool
}

func (h Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hashed), nil
}

func (h Hasher) Verify(plain, stored string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil {
		return true
	}
	if h.AllowLegacyPlaintext {
		return subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1
	}
	return false
}
