// Package repository implements the PostgreSQL-backed store of the portal:
// users, meals, orders, events, event signups and news. Every operation is
// a single statement; cross-entity references are opaque UUID strings
// resolved by application-level lookups, not foreign keys.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the pgx driver for use with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound is returned when a lookup matched no row.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert hit a uniqueness constraint.
var ErrAlreadyExists = errors.New("already exists")

// Storage encapsulates the PostgreSQL connection pool.
type Storage struct {
	Db *sql.DB
}

// New opens a connection pool to PostgreSQL and verifies it with a ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		Db: db,
	}, nil
}

// Ping reports whether the store is reachable. Used by the health endpoint.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.Db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
