package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// MatchUC defines the interface for the matching engine and sweeper
type MatchUC interface {
	MatchDriver(ctx context.Context, bookingID uuid.UUID) (*models.MatchResult, error)
	SweepStaleMatches(ctx context.Context) (*models.SweepReport, error)
}
