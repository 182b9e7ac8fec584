package gateway

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// GoogleMapsGateway resolves road distances through the Distance Matrix API
type GoogleMapsGateway struct {
	client *maps.Client
}

// NewGoogleMapsGateway creates the Google Maps gateway. It returns nil client
// errors for a missing key at call time, not construction time, so the
// service can boot without maps credentials.
func NewGoogleMapsGateway(cfg models.MapsConfig) (*GoogleMapsGateway, error) {
	if cfg.APIKey == "" {
		return &GoogleMapsGateway{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleMapsGateway{client: client}, nil
}

// Distance queries the Distance Matrix API for one origin-destination pair
func (g *GoogleMapsGateway) Distance(ctx context.Context, origin, destination string) (*models.DistanceResult, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: google maps is not configured", models.ErrProviderUnavailable)
	}

	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Language:     "vi",
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: distance matrix request failed: %s", models.ErrProviderUnavailable, err.Error())
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty distance matrix response", models.ErrProviderUnavailable)
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("route %s -> %s: %w", origin, destination, models.ErrNotFound)
	}

	return &models.DistanceResult{
		DistanceKm:  int(math.Round(float64(element.Distance.Meters) / 1000)),
		DurationMin: int(math.Round(element.Duration.Minutes())),
		Source:      "google_maps",
	}, nil
}
