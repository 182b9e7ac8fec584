package pricing

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// PricingUC defines the interface for fare calculation
type PricingUC interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Fare, error)
	Estimate(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error)
}
