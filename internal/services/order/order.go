// Package services contains the business logic for cafeteria orders.
package services

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/campusdk/campusportalen/internal/models"
	"github.com/campusdk/campusportalen/internal/storage/repository"
)

// ErrMealNotFound is returned when an order references a meal that does
// not exist.
var ErrMealNotFound = errors.New("meal not found")

// OrderRepository defines the order operations the service needs from the
// store.
type OrderRepository interface {
	// CreateOrder saves a new order and returns its uid.
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	// GetMeal returns the meal with the given uid.
	GetMeal(ctx context.Context, uid string) (*models.Meal, error)
}

// OrderService implements order creation.
type OrderService struct {
	repo OrderRepository
	log  *slog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo OrderRepository, log *slog.Logger) *OrderService {
	return &OrderService{
		repo: repo,
		log:  log,
	}
}

// Create records an order for the given user. The total price is fixed at
// creation time as quantity times the unit price of the meal the order
// references. An earlier version of the portal priced orders off whichever
// meal happened to be the day's special; pricing off the referenced meal
// is the intended behavior.
func (s *OrderService) Create(ctx context.Context, userUID string, req models.DummyOrder) (string, error) {
	meal, err := s.repo.GetMeal(ctx, req.MealUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrMealNotFound
		}
		return "", err
	}

	order := models.Order{
		UserUID:    userUID,
		MealUID:    meal.UID,
		Quantity:   req.Quantity,
		TotalPrice: round2(meal.Price * float64(req.Quantity)),
		Status:     models.OrderStatusCreated,
	}

	uid, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", err
	}
	s.log.Info("created new order",
		slog.String("uid", uid),
		slog.String("meal_uid", meal.UID),
		slog.Int("quantity", req.Quantity))
	return uid, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
