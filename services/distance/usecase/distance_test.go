package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/distance/mocks"
)

func newDistanceFixture(t *testing.T) (*DistanceUC, *mocks.MockCache, *mocks.MockMapsGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cache := mocks.NewMockCache(ctrl)
	maps := mocks.NewMockMapsGW(ctrl)
	cfg := models.MapsConfig{CacheTTLHours: 24}
	return NewDistanceUC(cfg, cache, maps, logger.NewNop()), cache, maps
}

func TestLookup_CacheHit(t *testing.T) {
	uc, cache, _ := newDistanceFixture(t)

	cached, err := json.Marshal(models.DistanceResult{DistanceKm: 310, DurationMin: 372, Source: "google_maps"})
	require.NoError(t, err)
	cache.EXPECT().Get(gomock.Any(), "distance:ho chi minh_da lat").Return(string(cached), nil)

	result, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Hồ Chí Minh",
		Destination: "Đà Lạt",
	})

	require.NoError(t, err)
	assert.Equal(t, 310, result.DistanceKm)
	assert.Equal(t, "cache", result.Source)
}

func TestLookup_MapsResultIsCached(t *testing.T) {
	uc, cache, maps := newDistanceFixture(t)

	cache.EXPECT().Get(gomock.Any(), "distance:ha noi_hai phong").Return("", redis.Nil)
	maps.EXPECT().Distance(gomock.Any(), "Ha Noi", "Hai Phong").Return(&models.DistanceResult{
		DistanceKm:  121,
		DurationMin: 105,
		Source:      "google_maps",
	}, nil)
	cache.EXPECT().
		Set(gomock.Any(), "distance:ha noi_hai phong", gomock.Any(), 24*time.Hour).
		Return(nil)

	result, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Ha Noi",
		Destination: "Hai Phong",
	})

	require.NoError(t, err)
	assert.Equal(t, 121, result.DistanceKm)
	assert.Equal(t, "google_maps", result.Source)
}

func TestLookup_FallbackWhenMapsIsDown(t *testing.T) {
	uc, cache, maps := newDistanceFixture(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", redis.Nil)
	maps.EXPECT().
		Distance(gomock.Any(), "Ho Chi Minh", "Vung Tau").
		Return(nil, models.ErrProviderUnavailable)

	result, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Ho Chi Minh",
		Destination: "Vung Tau",
	})

	require.NoError(t, err)
	assert.Equal(t, 125, result.DistanceKm)
	assert.Equal(t, 150, result.DurationMin) // km x 1.2
	assert.Equal(t, "fallback", result.Source)
	assert.NotEmpty(t, result.Note)
}

func TestLookup_FallbackReversedDirection(t *testing.T) {
	uc, cache, maps := newDistanceFixture(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", redis.Nil)
	maps.EXPECT().
		Distance(gomock.Any(), "Vũng Tàu", "Hồ Chí Minh").
		Return(nil, errors.New("quota exceeded"))

	result, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Vũng Tàu",
		Destination: "Hồ Chí Minh",
	})

	require.NoError(t, err)
	assert.Equal(t, 125, result.DistanceKm)
	assert.Equal(t, "fallback", result.Source)
}

func TestLookup_UnknownRoute(t *testing.T) {
	uc, cache, maps := newDistanceFixture(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", redis.Nil)
	maps.EXPECT().
		Distance(gomock.Any(), "Mui Ne", "Pleiku").
		Return(nil, models.ErrProviderUnavailable)

	_, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Mui Ne",
		Destination: "Pleiku",
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLookup_MissingOrigin(t *testing.T) {
	uc, _, _ := newDistanceFixture(t)

	_, err := uc.Lookup(context.Background(), models.DistanceRequest{Destination: "Da Lat"})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLookup_CorruptCacheEntryFallsThrough(t *testing.T) {
	uc, cache, maps := newDistanceFixture(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("{broken", nil)
	maps.EXPECT().Distance(gomock.Any(), "Da Nang", "Hue").Return(&models.DistanceResult{
		DistanceKm:  98,
		DurationMin: 120,
		Source:      "google_maps",
	}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Lookup(context.Background(), models.DistanceRequest{
		Origin:      "Da Nang",
		Destination: "Hue",
	})

	require.NoError(t, err)
	assert.Equal(t, 98, result.DistanceKm)
}
