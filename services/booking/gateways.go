package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// MatchGW triggers driver matching for a booking
type MatchGW interface {
	MatchDriver(ctx context.Context, bookingID uuid.UUID) (*models.MatchResult, error)
}

// PricingGW computes fare estimates for a booking
type PricingGW interface {
	Estimate(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error)
}

// DistanceGW resolves the road distance between two places
type DistanceGW interface {
	Lookup(ctx context.Context, req models.DistanceRequest) (*models.DistanceResult, error)
}

// NotifyGW dispatches booking lifecycle notifications, best effort
type NotifyGW interface {
	Dispatch(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error)
}
