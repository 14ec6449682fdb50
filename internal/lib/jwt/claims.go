package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures fall into exactly two classes. Both surface to the
// client as unauthenticated; the split exists so callers can log them apart.
var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid means the token was malformed or its signature did not
	// verify against the shared secret.
	ErrInvalid = errors.New("invalid token")
)

// CustomClaims holds the identity data embedded in an access token.
// The user's uid travels in the registered Subject claim.
type CustomClaims struct {
	Role                 string `json:"role"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	jwt.RegisteredClaims        // Subject, ExpiresAt, IssuedAt
}

// GenerateToken signs an HS256 token carrying the given identity claims,
// expiring tokenTTL from now.
func (j *MakerImpl) GenerateToken(userUID, role, email, name string) (string, error) {
	const op = "jwt.GenerateToken"
	claims := CustomClaims{
		Role:  role,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token string and
// returns the embedded claims. Expiry failures map to ErrExpired, every
// other failure to ErrInvalid.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrExpired)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrInvalid)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalid)
	}
	return claims, nil
}
