package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// PricingRepo reads the tariff tables
type PricingRepo struct {
	db *sqlx.DB
}

// NewPricingRepo creates the pricing repository
func NewPricingRepo(db *sqlx.DB) *PricingRepo {
	return &PricingRepo{db: db}
}

// GetPricingTiers returns the tariff brackets ordered by range
func (r *PricingRepo) GetPricingTiers(ctx context.Context) ([]models.PricingTier, error) {
	query := `
		SELECT min_km, max_km, price_per_km, label
		FROM pricing_tiers
		ORDER BY min_km ASC
	`

	var tiers []models.PricingTier
	if err := r.db.SelectContext(ctx, &tiers, query); err != nil {
		return nil, fmt.Errorf("failed to get pricing tiers: %w", err)
	}
	return tiers, nil
}

// GetVehicleTypes returns the bookable vehicle classes ordered by seat count
func (r *PricingRepo) GetVehicleTypes(ctx context.Context) ([]models.VehicleType, error) {
	query := `
		SELECT id, name, seats, price_multiplier
		FROM vehicle_types
		ORDER BY seats ASC
	`

	var types []models.VehicleType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("failed to get vehicle types: %w", err)
	}
	return types, nil
}
