package distance

import (
	"context"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// MapsGW resolves road distance through an external maps provider
type MapsGW interface {
	Distance(ctx context.Context, origin, destination string) (*models.DistanceResult, error)
}

// Cache stores resolved distances. Satisfied by database.RedisClient.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
