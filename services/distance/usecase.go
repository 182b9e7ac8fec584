package distance

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// DistanceUC defines the interface for route distance resolution
type DistanceUC interface {
	Lookup(ctx context.Context, req models.DistanceRequest) (*models.DistanceResult, error)
}
