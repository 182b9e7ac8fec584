package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/pricing"
)

// PricingUC implements fare calculation over the progressive tariff
type PricingUC struct {
	repo   pricing.PricingRepo
	logger *logger.Logger
}

// NewPricingUC creates the pricing usecase
func NewPricingUC(repo pricing.PricingRepo, logger *logger.Logger) *PricingUC {
	return &PricingUC{repo: repo, logger: logger}
}

func (uc *PricingUC) tiers(ctx context.Context) []models.PricingTier {
	tiers, err := uc.repo.GetPricingTiers(ctx)
	if err != nil || len(tiers) == 0 {
		if err != nil {
			uc.logger.Warn("pricing tiers unavailable, using defaults", zap.Error(err))
		}
		return defaultPricingTiers
	}
	return tiers
}

func (uc *PricingUC) vehicleMultiplier(ctx context.Context, vehicleTypeID string) (string, float64) {
	types, err := uc.repo.GetVehicleTypes(ctx)
	if err != nil || len(types) == 0 {
		if err != nil {
			uc.logger.Warn("vehicle types unavailable, using defaults", zap.Error(err))
		}
		types = defaultVehicleTypes
	}
	for _, vt := range types {
		if vt.ID == vehicleTypeID {
			return vt.ID, vt.PriceMultiplier
		}
	}
	// Unknown class falls back to the base vehicle
	return types[0].ID, types[0].PriceMultiplier
}

// calculateBase consumes the distance tier by tier. Each tier contributes
// min(remaining, tierRange) km at its own rate, so the first 70 km always
// cost the tier-1 rate regardless of total trip length.
func calculateBase(distanceKm int, tiers []models.PricingTier) (int64, []models.FareTierBreakdown) {
	var total int64
	var breakdown []models.FareTierBreakdown
	remaining := distanceKm

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}
		tierRange := tier.MaxKm - tier.MinKm + 1
		kmInTier := remaining
		if tierRange < kmInTier {
			kmInTier = tierRange
		}
		subtotal := int64(kmInTier) * tier.PricePerKm
		total += subtotal
		breakdown = append(breakdown, models.FareTierBreakdown{
			Label:      tier.Label,
			Km:         kmInTier,
			PricePerKm: tier.PricePerKm,
			Subtotal:   subtotal,
		})
		remaining -= kmInTier
	}

	return total, breakdown
}

// Quote computes the plain tiered fare with the vehicle-class multiplier,
// rounded to the nearest VND.
func (uc *PricingUC) Quote(ctx context.Context, req models.QuoteRequest) (*models.Fare, error) {
	if req.DistanceKm <= 0 {
		return &models.Fare{Total: 0, Breakdown: nil, DistanceKm: req.DistanceKm}, nil
	}

	vehicleID, multiplier := uc.vehicleMultiplier(ctx, req.VehicleType)
	base, breakdown := calculateBase(req.DistanceKm, uc.tiers(ctx))
	total := int64(math.Round(float64(base) * multiplier))

	return &models.Fare{
		Total:       total,
		Breakdown:   breakdown,
		DistanceKm:  req.DistanceKm,
		VehicleType: vehicleID,
		Multiplier:  multiplier,
	}, nil
}

func timeMultiplier(pickup time.Time) (float64, string) {
	hour := pickup.Hour()
	switch {
	case hour >= 6 && hour < 9:
		return peakHourMultiplier, "Cao diem sang (+15%)"
	case hour >= 16 && hour < 19:
		return peakHourMultiplier, "Cao diem chieu (+15%)"
	case hour >= 22 || hour < 5:
		return lateNightMultiplier, "Phu thu dem khuya (+25%)"
	default:
		return 1.0, ""
	}
}

func holidayAdjustment(pickup time.Time) (float64, string) {
	dateStr := pickup.Format("2006-01-02")
	for _, tet := range tetRanges {
		if dateStr >= tet.start && dateStr <= tet.end {
			return tetSurcharge, "Phu thu Tet Nguyen Dan (+50%)"
		}
	}
	if holidayDates[pickup.Format("01-02")] {
		return holidaySurcharge, "Phu thu ngay le (+30%)"
	}
	return 0, ""
}

// Estimate computes the dynamic fare: base x vehicle x time, then holiday
// surcharge and return-trip discount, rounded to the nearest 1000 VND.
func (uc *PricingUC) Estimate(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error) {
	if req.DistanceKm <= 0 {
		return nil, fmt.Errorf("%w: distance_km must be positive", models.ErrValidation)
	}

	pickup := time.Now()
	if req.PickupTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.PickupTime)
		if err != nil {
			return nil, fmt.Errorf("%w: pickup_time must be RFC3339", models.ErrValidation)
		}
		pickup = parsed
	}

	base, breakdown := calculateBase(req.DistanceKm, uc.tiers(ctx))
	_, vehicleMult := uc.vehicleMultiplier(ctx, req.VehicleType)
	timeMult, timeNote := timeMultiplier(pickup)
	surcharge, holidayNote := holidayAdjustment(pickup)

	discount := 0.0
	if req.IsReturnTrip {
		discount = returnTripDiscount
	}

	final := float64(base) * vehicleMult * timeMult
	final *= 1 + surcharge
	final *= 1 - discount
	// Round to whole dong before the 1000-bucket so float noise just under a
	// half boundary (e.g. 1552499.999...) cannot tip the bucket down.
	finalFare := int64(math.Round(math.Round(final)/1000)) * 1000

	var notes []string
	if timeNote != "" {
		notes = append(notes, timeNote)
	}
	if holidayNote != "" {
		notes = append(notes, holidayNote)
	}
	if req.IsReturnTrip {
		notes = append(notes, "Giam gia chieu ve (-15%)")
	}

	return &models.Estimate{
		BaseFare:          base,
		VehicleMultiplier: vehicleMult,
		TimeMultiplier:    timeMult,
		HolidaySurcharge:  surcharge,
		ReturnDiscount:    discount,
		FinalFare:         finalFare,
		Breakdown:         breakdown,
		Notes:             notes,
	}, nil
}
