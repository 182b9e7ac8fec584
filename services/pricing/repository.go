package pricing

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// PricingRepo defines the interface for tariff data access
type PricingRepo interface {
	GetPricingTiers(ctx context.Context) ([]models.PricingTier, error)
	GetVehicleTypes(ctx context.Context) ([]models.VehicleType, error)
}
