package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/report"
	"github.com/NicholasChen868/xedulichvogia/services/report/mocks"
)

func newReportFixture(t *testing.T) (*ReportUC, *mocks.MockReportRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockReportRepo(ctrl)
	cfg := models.BookingConfig{CommissionPercent: 0.15}
	return NewReportUC(cfg, repo, logger.NewNop()), repo
}

func TestDailyReport_AggregatesOneCalendarDay(t *testing.T) {
	uc, repo := newReportFixture(t)

	day := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	wantTo := wantFrom.Add(24 * time.Hour)

	repo.EXPECT().
		GetBookingStats(gomock.Any(), wantFrom, wantTo).
		Return(&report.BookingDayStats{
			Total:     12,
			Pending:   2,
			Matched:   1,
			Confirmed: 3,
			Completed: 5,
			Cancelled: 1,
			Revenue:   18500000,
		}, nil)
	repo.EXPECT().CountNewDrivers(gomock.Any(), wantFrom, wantTo).Return(2, nil)
	repo.EXPECT().CountActiveDrivers(gomock.Any()).Return(34, nil)
	repo.EXPECT().AvgActiveRating(gomock.Any()).Return(4.82, nil)

	result, err := uc.DailyReport(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", result.Stats.Date)
	assert.Equal(t, 12, result.Stats.TotalBookings)
	assert.Equal(t, int64(18500000), result.Stats.TotalRevenue)
	assert.Equal(t, int64(2775000), result.Stats.PlatformCommission) // 15%
	assert.Equal(t, 2, result.Stats.NewDrivers)
	assert.Equal(t, 34, result.Stats.ActiveDrivers)
	assert.Equal(t, 4.82, result.Stats.AvgRating)
}

func TestDailyReport_RenderedText(t *testing.T) {
	uc, repo := newReportFixture(t)

	repo.EXPECT().GetBookingStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(&report.BookingDayStats{
		Total:     3,
		Completed: 2,
		Cancelled: 1,
		Revenue:   5000000,
	}, nil)
	repo.EXPECT().CountNewDrivers(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	repo.EXPECT().CountActiveDrivers(gomock.Any()).Return(10, nil)
	repo.EXPECT().AvgActiveRating(gomock.Any()).Return(5.0, nil)

	result, err := uc.DailyReport(context.Background(), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Contains(t, result.Report, "BAO CAO NGAY 2026-08-30")
	assert.Contains(t, result.Report, "DON HANG: 3")
	assert.Contains(t, result.Report, "Hoan thanh: 2")
	assert.Contains(t, result.Report, "Tong: 5000000d")
	assert.Contains(t, result.Report, "Hoa hong (15%): 750000d")
	assert.Contains(t, result.Report, "Rating TB: 5.00")
}

func TestDailyReport_StatsQueryError(t *testing.T) {
	uc, repo := newReportFixture(t)

	repo.EXPECT().
		GetBookingStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("query timeout"))

	_, err := uc.DailyReport(context.Background(), time.Now())

	assert.Error(t, err)
}
