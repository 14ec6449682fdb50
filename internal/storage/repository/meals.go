package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campusdk/campusportalen/internal/models"
)

// CreateMeal inserts a new meal and returns its generated uid.
func (s *Storage) CreateMeal(ctx context.Context, meal models.Meal) (string, error) {
	const op = "storage.CreateMeal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO meals (name, description, price, day, is_today_special,
			      is_surplus_offer, co2_kg_per_portion, portions_available)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING uid`
	err := s.Db.QueryRowContext(ctx, query,
		meal.Name, meal.Description, meal.Price, meal.Day, meal.IsTodaySpecial,
		meal.IsSurplusOffer, meal.CO2KgPerPortion, meal.PortionsAvailable).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetMeal returns a meal by uid, or ErrNotFound.
func (s *Storage) GetMeal(ctx context.Context, uid string) (*models.Meal, error) {
	const op = "storage.GetMeal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, description, price, day, is_today_special,
			      is_surplus_offer, co2_kg_per_portion, portions_available
			  FROM meals
			  WHERE uid = $1`
	row := s.Db.QueryRowContext(ctx, query, uid)

	m, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// FindSpecialByDay returns the meal flagged as the day's special for the
// given day, or nil when no such meal exists.
func (s *Storage) FindSpecialByDay(ctx context.Context, day time.Time) (*models.Meal, error) {
	const op = "storage.FindSpecialByDay"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, description, price, day, is_today_special,
			      is_surplus_offer, co2_kg_per_portion, portions_available
			  FROM meals
			  WHERE day = $1 AND is_today_special = TRUE
			  LIMIT 1`
	row := s.Db.QueryRowContext(ctx, query, day)

	m, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// ListSurplusByDay returns all meals flagged as surplus offers for the
// given day.
func (s *Storage) ListSurplusByDay(ctx context.Context, day time.Time) ([]*models.Meal, error) {
	const op = "storage.ListSurplusByDay"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, description, price, day, is_today_special,
			      is_surplus_offer, co2_kg_per_portion, portions_available
			  FROM meals
			  WHERE day = $1 AND is_surplus_offer = TRUE
			  ORDER BY name`
	rows, err := s.Db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumCO2PerPortion sums co2_kg_per_portion over all meals where the value
// is present.
func (s *Storage) SumCO2PerPortion(ctx context.Context) (float64, error) {
	const op = "storage.SumCO2PerPortion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sum float64
	query := `SELECT COALESCE(SUM(co2_kg_per_portion), 0)
			  FROM meals
			  WHERE co2_kg_per_portion IS NOT NULL`
	if err := s.Db.QueryRowContext(ctx, query).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMeal(row scanner) (*models.Meal, error) {
	m := &models.Meal{}
	var description sql.NullString
	var co2 sql.NullFloat64
	var portions sql.NullInt64
	if err := row.Scan(&m.UID, &m.Name, &description, &m.Price, &m.Day,
		&m.IsTodaySpecial, &m.IsSurplusOffer, &co2, &portions); err != nil {
		return nil, err
	}
	if description.Valid {
		m.Description = &description.String
	}
	if co2.Valid {
		m.CO2KgPerPortion = &co2.Float64
	}
	if portions.Valid {
		p := int(portions.Int64)
		m.PortionsAvailable = &p
	}
	return m, nil
}
