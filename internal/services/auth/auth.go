// Package services contains the business logic for authentication and
// account seeding.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusdk/campusportalen/internal/lib/jwt"
	"github.com/campusdk/campusportalen/internal/lib/password"
	"github.com/campusdk/campusportalen/internal/models"
	"github.com/campusdk/campusportalen/internal/storage/repository"
)

// ErrInvalidCredentials covers every login failure: unknown email, inactive
// account or wrong password. Callers get no hint which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository describes the user operations the service needs from the
// store.
type UserRepository interface {
	// GetActiveUserByEmail returns the active user with the given email.
	GetActiveUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser saves a new user and returns its uid.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int, error)
}

// AuthService handles login and demo-account seeding.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login checks the credentials of an active user and returns a signed
// access token carrying the user's uid, role, email and name.
//
// There is no rate limiting or lockout on this path.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Role, user.Email, user.Name)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Seed creates the demo admin and student accounts when the user table is
// empty. Returns false without touching the store when users already exist.
func (s *AuthService) Seed(ctx context.Context) (bool, error) {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	demo := []models.User{
		{Email: "admin@campus.dk", Name: "Admin", Role: models.RoleAdmin, Active: true},
		{Email: "elev@campus.dk", Name: "Elev", Role: models.RoleStudent, Active: true},
	}
	passwords := []string{"admin123", "elev123"}
	for i, u := range demo {
		hashed, err := password.Hash(passwords[i])
		if err != nil {
			return false, fmt.Errorf("seed %s: %w", u.Email, err)
		}
		u.PasswordHash = hashed
		if _, err := s.users.CreateUser(ctx, u); err != nil {
			return false, fmt.Errorf("seed %s: %w", u.Email, err)
		}
	}
	return true, nil
}
