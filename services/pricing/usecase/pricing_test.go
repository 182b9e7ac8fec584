package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/pricing/mocks"
)

func newTestPricingUC(t *testing.T) (*PricingUC, *mocks.MockPricingRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := mocks.NewMockPricingRepo(ctrl)
	return NewPricingUC(mockRepo, logger.NewNop()), mockRepo
}

func TestCalculateBase_SingleTier(t *testing.T) {
	total, breakdown := calculateBase(70, defaultPricingTiers)

	assert.Equal(t, int64(70*15000), total)
	assert.Len(t, breakdown, 1)
	assert.Equal(t, 70, breakdown[0].Km)
	assert.Equal(t, int64(15000), breakdown[0].PricePerKm)
}

func TestCalculateBase_TierBoundary(t *testing.T) {
	// 71 km: the 71st km must be billed at the second tier rate
	total, breakdown := calculateBase(71, defaultPricingTiers)

	assert.Equal(t, int64(70*15000+1*10000), total)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, 70, breakdown[0].Km)
	assert.Equal(t, 1, breakdown[1].Km)
	assert.Equal(t, int64(10000), breakdown[1].PricePerKm)
}

func TestCalculateBase_ThreeTiers(t *testing.T) {
	// 170 km = 70 @ 15000 + 80 @ 10000 + 20 @ 9000
	total, breakdown := calculateBase(170, defaultPricingTiers)

	assert.Equal(t, int64(2030000), total)
	assert.Len(t, breakdown, 3)
	assert.Equal(t, int64(1050000), breakdown[0].Subtotal)
	assert.Equal(t, int64(800000), breakdown[1].Subtotal)
	assert.Equal(t, int64(180000), breakdown[2].Subtotal)
}

func TestQuote_VehicleMultiplier(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	fare, err := uc.Quote(context.Background(), models.QuoteRequest{
		DistanceKm:  170,
		VehicleType: "suv-7",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2639000), fare.Total) // 2,030,000 x 1.3
	assert.Equal(t, "suv-7", fare.VehicleType)
	assert.Equal(t, 1.3, fare.Multiplier)
}

func TestQuote_UnknownVehicleFallsBackToBase(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	fare, err := uc.Quote(context.Background(), models.QuoteRequest{
		DistanceKm:  50,
		VehicleType: "hovercraft",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sedan-4", fare.VehicleType)
	assert.Equal(t, int64(50*15000), fare.Total)
}

func TestQuote_ZeroDistance(t *testing.T) {
	uc, _ := newTestPricingUC(t)

	fare, err := uc.Quote(context.Background(), models.QuoteRequest{DistanceKm: 0})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), fare.Total)
	assert.Empty(t, fare.Breakdown)
}

func TestQuote_RepoErrorUsesDefaults(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, dbErr).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, dbErr).AnyTimes()

	fare, err := uc.Quote(context.Background(), models.QuoteRequest{DistanceKm: 70})

	assert.NoError(t, err)
	assert.Equal(t, int64(1050000), fare.Total)
}

func TestEstimate_OffPeakNoAdjustments(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "2026-03-11T12:00:00+07:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1350000), est.BaseFare) // 70x15000 + 30x10000
	assert.Equal(t, 1.0, est.TimeMultiplier)
	assert.Equal(t, 0.0, est.HolidaySurcharge)
	assert.Equal(t, int64(1350000), est.FinalFare)
	assert.Empty(t, est.Notes)
}

func TestEstimate_MorningPeak(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "2026-03-11T07:30:00+07:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1.15, est.TimeMultiplier)
	// 1,350,000 x 1.15 = 1,552,500 rounded to 1,553,000
	assert.Equal(t, int64(1553000), est.FinalFare)
	assert.Contains(t, est.Notes, "Cao diem sang (+15%)")
}

func TestEstimate_LateNight(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "2026-03-11T23:00:00+07:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1.25, est.TimeMultiplier)
	// 1,350,000 x 1.25 = 1,687,500 rounded to 1,688,000
	assert.Equal(t, int64(1688000), est.FinalFare)
	assert.Contains(t, est.Notes, "Phu thu dem khuya (+25%)")
}

func TestEstimate_NationalHoliday(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "2026-04-30T12:00:00+07:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.30, est.HolidaySurcharge)
	assert.Equal(t, int64(1755000), est.FinalFare) // 1,350,000 x 1.3
	assert.Contains(t, est.Notes, "Phu thu ngay le (+30%)")
}

func TestEstimate_TetSurcharge(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "2026-02-15T12:00:00+07:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.50, est.HolidaySurcharge)
	assert.Equal(t, int64(2025000), est.FinalFare) // 1,350,000 x 1.5
	assert.Contains(t, est.Notes, "Phu thu Tet Nguyen Dan (+50%)")
}

func TestEstimate_ReturnTripDiscount(t *testing.T) {
	uc, mockRepo := newTestPricingUC(t)

	mockRepo.EXPECT().GetPricingTiers(gomock.Any()).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().GetVehicleTypes(gomock.Any()).Return(nil, nil).AnyTimes()

	est, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm:   100,
		PickupTime:   "2026-03-11T12:00:00+07:00",
		IsReturnTrip: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.15, est.ReturnDiscount)
	// 1,350,000 x 0.85 = 1,147,500 rounded to 1,148,000
	assert.Equal(t, int64(1148000), est.FinalFare)
	assert.Contains(t, est.Notes, "Giam gia chieu ve (-15%)")
}

func TestEstimate_InvalidDistance(t *testing.T) {
	uc, _ := newTestPricingUC(t)

	_, err := uc.Estimate(context.Background(), models.EstimateRequest{DistanceKm: 0})

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEstimate_InvalidPickupTime(t *testing.T) {
	uc, _ := newTestPricingUC(t)

	_, err := uc.Estimate(context.Background(), models.EstimateRequest{
		DistanceKm: 100,
		PickupTime: "15-02-2026",
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}
