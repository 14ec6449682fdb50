package repository

import (
	"context"
	"fmt"

	"github.com/campusdk/campusportalen/internal/models"
)

// CreateOrder inserts a new order and returns its generated uid.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO orders (user_uid, meal_uid, quantity, total_price, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid`
	err := s.Db.QueryRowContext(ctx, query,
		order.UserUID, order.MealUID, order.Quantity, order.TotalPrice, order.Status).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// SumQuantitySold sums the quantity of all orders that count as sold
// portions: created, paid and fulfilled. Cancelled orders are excluded.
func (s *Storage) SumQuantitySold(ctx context.Context) (int, error) {
	const op = "storage.SumQuantitySold"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sum int
	query := `SELECT COALESCE(SUM(quantity), 0)
			  FROM orders
			  WHERE status IN ('created', 'paid', 'fulfilled')`
	if err := s.Db.QueryRowContext(ctx, query).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}

// SumQuantityCompleted sums the quantity of paid and fulfilled orders only.
// This is the base of the waste-saved estimate.
func (s *Storage) SumQuantityCompleted(ctx context.Context) (int, error) {
	const op = "storage.SumQuantityCompleted"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sum int
	query := `SELECT COALESCE(SUM(quantity), 0)
			  FROM orders
			  WHERE status IN ('paid', 'fulfilled')`
	if err := s.Db.QueryRowContext(ctx, query).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}
