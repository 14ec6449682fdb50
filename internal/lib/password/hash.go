// Package password implements hashing and verification of user passwords.
//
// Hash produces a bcrypt digest for storage; Compare checks a plaintext
// password against a stored digest. The cost factor is embedded in the
// digest itself, so digests produced with a different cost keep verifying.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash takes a plaintext password and returns its bcrypt digest.
func Hash(password string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare checks a plaintext password against a stored bcrypt digest.
//
// Returns nil on match. A malformed digest is reported as an ordinary
// mismatch error, never a panic.
func Compare(digest, password string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
