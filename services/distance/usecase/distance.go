package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/distance"
)

// fallbackDistances covers the most booked intercity routes (km) for when
// the maps provider is down or unconfigured. Keys are folded place names.
var fallbackDistances = map[string]int{
	"ho chi minh_vung tau":   125,
	"ho chi minh_da lat":     310,
	"ho chi minh_nha trang":  430,
	"ho chi minh_phan thiet": 200,
	"ho chi minh_can tho":    170,
	"ho chi minh_long an":    50,
	"ho chi minh_binh duong": 30,
	"ho chi minh_dong nai":   35,
	"ha noi_hai phong":       120,
	"ha noi_ha long":         165,
	"ha noi_ninh binh":       95,
	"ha noi_sa pa":           315,
	"da nang_hoi an":         30,
	"da nang_hue":            100,
}

// DistanceUC resolves route distances: Redis cache first, then the maps
// provider, then the static fallback table in both directions.
type DistanceUC struct {
	cfg    models.MapsConfig
	cache  distance.Cache
	mapsGW distance.MapsGW
	logger *logger.Logger
}

// NewDistanceUC creates the distance usecase
func NewDistanceUC(cfg models.MapsConfig, cache distance.Cache, mapsGW distance.MapsGW, logger *logger.Logger) *DistanceUC {
	return &DistanceUC{cfg: cfg, cache: cache, mapsGW: mapsGW, logger: logger}
}

// Lookup resolves the distance for one origin-destination pair
func (uc *DistanceUC) Lookup(ctx context.Context, req models.DistanceRequest) (*models.DistanceResult, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", models.ErrValidation)
	}

	routeKey := utils.RouteKey(req.Origin, req.Destination)
	cacheKey := "distance:" + routeKey

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var result models.DistanceResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			result.Source = "cache"
			return &result, nil
		}
	}

	result, err := uc.mapsGW.Distance(ctx, req.Origin, req.Destination)
	if err == nil {
		uc.storeInCache(ctx, cacheKey, result)
		return result, nil
	}
	uc.logger.Debug("maps lookup failed, trying fallback table",
		zap.String("route", routeKey),
		zap.Error(err))

	if km, ok := uc.fallback(req.Origin, req.Destination); ok {
		return &models.DistanceResult{
			DistanceKm:  km,
			DurationMin: int(math.Round(float64(km) * 1.2)),
			Source:      "fallback",
			Note:        "Khoang cach uoc tinh tu bang tuyen pho bien.",
		}, nil
	}

	return nil, fmt.Errorf("route %s -> %s: %w", req.Origin, req.Destination, models.ErrNotFound)
}

func (uc *DistanceUC) storeInCache(ctx context.Context, key string, result *models.DistanceResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := time.Duration(uc.cfg.CacheTTLHours) * time.Hour
	if err := uc.cache.Set(ctx, key, payload, ttl); err != nil {
		uc.logger.Debug("distance cache write failed", zap.Error(err))
	}
}

// fallback checks the static table in both directions
func (uc *DistanceUC) fallback(origin, destination string) (int, bool) {
	if km, ok := fallbackDistances[utils.RouteKey(origin, destination)]; ok {
		return km, true
	}
	km, ok := fallbackDistances[utils.RouteKey(destination, origin)]
	return km, ok
}
