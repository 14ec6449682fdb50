// Package services contains the business logic for cafeteria meals,
// including the cached day views.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusdk/campusportalen/internal/models"
)

// ErrInvalidDay is returned when a meal's day is not a YYYY-MM-DD date.
var ErrInvalidDay = errors.New("invalid day")

// MealRepository defines the meal operations the service needs from the
// store.
type MealRepository interface {
	// CreateMeal saves a new meal and returns its uid.
	CreateMeal(ctx context.Context, meal models.Meal) (string, error)
	// FindSpecialByDay returns the day's special meal, or nil when none is set.
	FindSpecialByDay(ctx context.Context, day time.Time) (*models.Meal, error)
	// ListSurplusByDay returns all surplus offers for the day.
	ListSurplusByDay(ctx context.Context, day time.Time) ([]*models.Meal, error)
}

// Cache describes the caching operations used by the service.
type Cache interface {
	// Get tries to fetch a cached value by key.
	Get(key string, result any) (bool, error)
	// Set stores a value with a time to live.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate removes a value by key.
	Invalidate(key string) error
}

// MealService implements meal list
// and creation logic with read-through caching of the day views.
type MealService struct {
	repo  MealRepository
	cache Cache
	log   *slog.Logger
}

// NewMealService creates a new MealService.
func NewMealService(repo MealRepository, cache Cache, log *slog.Logger) *MealService {
	return &MealService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// today returns the current UTC date with the time part zeroed. All "today"
// queries of the portal use the UTC day boundary.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// TodaySpecial returns the meal flagged as today's special, or nil when
// none is set. The result is cached per day.
func (s *MealService) TodaySpecial(ctx context.Context) (*models.Meal, error) {
	day := today()
	cacheKey := fmt.Sprintf("meals:special:%s", day.Format("2006-01-02"))

	var cached *models.Meal
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		s.log.Warn("failed to read meal from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	meal, err := s.repo.FindSpecialByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if meal != nil {
		if err := s.cache.Set(cacheKey, meal, time.Hour); err != nil {
			s.log.Warn("failed to cache meal", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return meal, nil
}

// Surplus returns today's surplus offers, cached per day.
func (s *MealService) Surplus(ctx context.Context) ([]*models.Meal, error) {
	day := today()
	cacheKey := fmt.Sprintf("meals:surplus:%s", day.Format("2006-01-02"))

	var cached []*models.Meal
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		s.log.Warn("failed to read meals from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	meals, err := s.repo.ListSurplusByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, meals, time.Hour); err != nil {
		s.log.Warn("failed to cache meals", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return meals, nil
}

// Create validates and stores a new meal, invalidating the cached day views
// of the meal's day.
func (s *MealService) Create(ctx context.Context, req models.DummyMeal) (string, error) {
	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDay, err)
	}

	meal := models.Meal{
		Name:              req.Name,
		Description:       req.Description,
		Price:             *req.Price,
		Day:               day,
		IsTodaySpecial:    req.IsTodaySpecial,
		IsSurplusOffer:    req.IsSurplusOffer,
		CO2KgPerPortion:   req.CO2KgPerPortion,
		PortionsAvailable: req.PortionsAvailable,
	}

	uid, err := s.repo.CreateMeal(ctx, meal)
	if err != nil {
		return "", err
	}
	s.log.Info("created new meal", slog.String("uid", uid), slog.String("day", req.Day))

	for _, key := range []string{
		fmt.Sprintf("meals:special:%s", day.Format("2006-01-02")),
		fmt.Sprintf("meals:surplus:%s", day.Format("2006-01-02")),
	} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), slog.Any("err", err))
		}
	}
	return uid, nil
}
