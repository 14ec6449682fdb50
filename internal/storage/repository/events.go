package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campusdk/campusportalen/internal/models"
)

// CreateEvent inserts a new event and returns its generated uid.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO events (title, description, date, location, capacity, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid`
	err := s.Db.QueryRowContext(ctx, query,
		event.Title, event.Description, event.Date, event.Location,
		event.Capacity, event.CreatedBy).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListUpcomingEvents returns all events dated now or later, ascending by date.
func (s *Storage) ListUpcomingEvents(ctx context.Context, now time.Time) ([]*models.Event, error) {
	const op = "storage.ListUpcomingEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, description, date, location, capacity, created_by
			  FROM events
			  WHERE date >= $1
			  ORDER BY date ASC`
	rows, err := s.Db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		e := &models.Event{}
		var description, location sql.NullString
		var capacity sql.NullInt64
		if err = rows.Scan(&e.UID, &e.Title, &description, &e.Date,
			&location, &capacity, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if description.Valid {
			e.Description = &description.String
		}
		if location.Valid {
			e.Location = &location.String
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			e.Capacity = &c
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindSignup reports whether a signup exists for the (event, user) pair.
func (s *Storage) FindSignup(ctx context.Context, eventUID, userUID string) (bool, error) {
	const op = "storage.FindSignup"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (
			      SELECT 1 FROM event_signups
			      WHERE event_uid = $1 AND user_uid = $2
			  )`
	if err := s.Db.QueryRowContext(ctx, query, eventUID, userUID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateSignup inserts a signup for the (event, user) pair and returns its
// generated uid. The unique index backs the one-signup-per-pair invariant:
// a conflicting insert affects no row and maps to ErrAlreadyExists.
func (s *Storage) CreateSignup(ctx context.Context, eventUID, userUID string) (string, error) {
	const op = "storage.CreateSignup"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO event_signups (event_uid, user_uid)
			  VALUES ($1, $2)
			  ON CONFLICT (event_uid, user_uid) DO NOTHING
			  RETURNING uid`
	err := s.Db.QueryRowContext(ctx, query, eventUID, userUID).Scan(&newUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListSignupsByEvent returns all signups recorded for the given event.
func (s *Storage) ListSignupsByEvent(ctx context.Context, eventUID string) ([]*models.EventSignup, error) {
	const op = "storage.ListSignupsByEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, event_uid, user_uid
			  FROM event_signups
			  WHERE event_uid = $1`
	rows, err := s.Db.QueryContext(ctx, query, eventUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.EventSignup
	for rows.Next() {
		sg := &models.EventSignup{}
		if err = rows.Scan(&sg.UID, &sg.EventUID, &sg.UserUID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
