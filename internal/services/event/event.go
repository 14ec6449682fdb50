// Package services contains the business logic for events and signups.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusdk/campusportalen/internal/models"
	"github.com/campusdk/campusportalen/internal/storage/repository"
)

// ErrInvalidDate is returned when an event's date is not RFC3339.
var ErrInvalidDate = errors.New("invalid date")

// EventRepository defines the event operations the service needs from the
// store.
type EventRepository interface {
	// CreateEvent saves a new event and returns its uid.
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	// ListUpcomingEvents returns events dated now or later, ascending.
	ListUpcomingEvents(ctx context.Context, now time.Time) ([]*models.Event, error)
	// FindSignup reports whether the (event, user) signup exists.
	FindSignup(ctx context.Context, eventUID, userUID string) (bool, error)
	// CreateSignup saves a signup and returns its uid.
	CreateSignup(ctx context.Context, eventUID, userUID string) (string, error)
	// ListSignupsByEvent returns all signups of an event.
	ListSignupsByEvent(ctx context.Context, eventUID string) ([]*models.EventSignup, error)
}

// EventService implements event listing, creation and idempotent signup.
type EventService struct {
	repo EventRepository
	log  *slog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(repo EventRepository, log *slog.Logger) *EventService {
	return &EventService{
		repo: repo,
		log:  log,
	}
}

// ListUpcoming returns all events dated now or later, ascending by date.
// Past events are excluded entirely.
func (s *EventService) ListUpcoming(ctx context.Context) ([]*models.Event, error) {
	return s.repo.ListUpcomingEvents(ctx, time.Now().UTC())
}

// Create validates and stores a new event published by createdBy.
func (s *EventService) Create(ctx context.Context, createdBy string, req models.DummyEvent) (string, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		CreatedBy:   createdBy,
	}

	uid, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return "", err
	}
	s.log.Info("created new event", slog.String("uid", uid), slog.String("title", req.Title))
	return uid, nil
}

// SignUp records a signup of a user for an event. The operation is
// idempotent: a repeat signup for the same pair reports alreadySigned
// instead of creating a duplicate, and the store's unique index covers the
// race between two concurrent first signups.
func (s *EventService) SignUp(ctx context.Context, eventUID, userUID string) (uid string, alreadySigned bool, err error) {
	exists, err := s.repo.FindSignup(ctx, eventUID, userUID)
	if err != nil {
		return "", false, err
	}
	if exists {
		return "", true, nil
	}

	uid, err = s.repo.CreateSignup(ctx, eventUID, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", true, nil
		}
		return "", false, err
	}
	s.log.Info("created event signup",
		slog.String("event_uid", eventUID),
		slog.String("user_uid", userUID))
	return uid, false, nil
}

// ListSignups returns all signups recorded for an event.
func (s *EventService) ListSignups(ctx context.Context, eventUID string) ([]*models.EventSignup, error) {
	return s.repo.ListSignupsByEvent(ctx, eventUID)
}
