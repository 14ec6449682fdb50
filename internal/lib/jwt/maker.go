// Package jwt implements issuing and verification of the portal's access
// tokens.
//
// Tokens are signed with a single process-wide HS256 secret and carry the
// user's identity claims plus an expiry set to issue time + TTL. There is
// no server-side session store and no revocation before expiry; the shared
// secret is the sole trust anchor.
package jwt

import "time"

// Maker describes issuing and verification of access tokens.
type Maker interface {
	// GenerateToken signs a token carrying the user's uid, role, email and name.
	GenerateToken(userUID, role, email, name string) (string, error)
	// ParseToken validates a token string and returns its claims. On failure
	// the returned error matches ErrExpired or ErrInvalid.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with a shared secret key and a fixed token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from the shared secret and token TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
