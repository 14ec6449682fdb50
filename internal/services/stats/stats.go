// Package services contains the business logic for the sustainability
// statistics overview.
package services

import (
	"context"
	"math"

	"github.com/campusdk/campusportalen/internal/models"
)

// wasteKgPerPortion is the estimated kilograms of food waste avoided per
// surplus portion that was actually paid for or fulfilled.
const wasteKgPerPortion = 0.15

// StatsRepository defines the aggregations the service needs from the
// store.
type StatsRepository interface {
	// SumQuantitySold sums quantities over created, paid and fulfilled orders.
	SumQuantitySold(ctx context.Context) (int, error)
	// SumQuantityCompleted sums quantities over paid and fulfilled orders.
	SumQuantityCompleted(ctx context.Context) (int, error)
	// SumCO2PerPortion sums co2_kg_per_portion over meals where present.
	SumCO2PerPortion(ctx context.Context) (float64, error)
}

// StatsService computes the portal's statistics overview. The numbers are
// whole-table aggregations with no pagination; fine at school scale.
type StatsService struct {
	repo StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

// Overview returns portions sold, CO2 saved and waste saved, each rounded
// to two decimals.
func (s *StatsService) Overview(ctx context.Context) (*models.Stats, error) {
	portions, err := s.repo.SumQuantitySold(ctx)
	if err != nil {
		return nil, err
	}
	co2, err := s.repo.SumCO2PerPortion(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.SumQuantityCompleted(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		PortionsSold: portions,
		CO2SavedKg:   round2(co2),
		WasteSavedKg: round2(wasteKgPerPortion * float64(completed)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
