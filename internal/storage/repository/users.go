package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusdk/campusportalen/internal/models"
)

// CreateUser inserts a new user and returns its generated uid.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, name, role, password_hash, active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := s.Db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.Role, user.PasswordHash, user.Active).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetActiveUserByEmail returns the active user registered under email.
// Inactive accounts and unknown addresses both map to ErrNotFound, so the
// login path cannot tell the two cases apart.
func (s *Storage) GetActiveUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetActiveUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, name, role, password_hash, active
			  FROM users
			  WHERE email = $1 AND active = TRUE`
	u := &models.User{}
	row := s.Db.QueryRowContext(ctx, query, email)

	if err := row.Scan(&u.UID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CountUsers returns the total number of user rows. Used by the seeding
// endpoint to decide whether the demo accounts already exist.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM users`
	if err := s.Db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
