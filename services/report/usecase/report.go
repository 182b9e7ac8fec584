package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/report"
)

// ReportUC implements the admin daily report
type ReportUC struct {
	cfg        models.BookingConfig
	reportRepo report.ReportRepo
	logger     *logger.Logger
}

// NewReportUC creates the report usecase
func NewReportUC(cfg models.BookingConfig, reportRepo report.ReportRepo, logger *logger.Logger) *ReportUC {
	return &ReportUC{cfg: cfg, reportRepo: reportRepo, logger: logger}
}

// DailyReport aggregates one calendar day of activity and renders the text
// summary sent to admins
func (uc *ReportUC) DailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	bookingStats, err := uc.reportRepo.GetBookingStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	newDrivers, err := uc.reportRepo.CountNewDrivers(ctx, from, to)
	if err != nil {
		return nil, err
	}
	activeDrivers, err := uc.reportRepo.CountActiveDrivers(ctx)
	if err != nil {
		return nil, err
	}
	avgRating, err := uc.reportRepo.AvgActiveRating(ctx)
	if err != nil {
		return nil, err
	}

	stats := models.DailyStats{
		Date:               from.Format("2006-01-02"),
		TotalBookings:      bookingStats.Total,
		Pending:            bookingStats.Pending,
		Matched:            bookingStats.Matched,
		Confirmed:          bookingStats.Confirmed,
		Completed:          bookingStats.Completed,
		Cancelled:          bookingStats.Cancelled,
		TotalRevenue:       bookingStats.Revenue,
		PlatformCommission: int64(math.Round(float64(bookingStats.Revenue) * uc.cfg.CommissionPercent)),
		NewDrivers:         newDrivers,
		ActiveDrivers:      activeDrivers,
		AvgRating:          avgRating,
	}

	uc.logger.Info("daily report generated",
		zap.String("date", stats.Date),
		zap.Int("bookings", stats.TotalBookings),
		zap.Int64("revenue", stats.TotalRevenue))

	return &models.DailyReport{Stats: stats, Report: renderReport(stats, uc.cfg.CommissionPercent)}, nil
}

func renderReport(stats models.DailyStats, commission float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BAO CAO NGAY %s\n", stats.Date)
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "DON HANG: %d\n", stats.TotalBookings)
	fmt.Fprintf(&b, "  Cho tai xe: %d\n", stats.Pending)
	fmt.Fprintf(&b, "  Da ghep: %d\n", stats.Matched)
	fmt.Fprintf(&b, "  Da nhan: %d\n", stats.Confirmed)
	fmt.Fprintf(&b, "  Hoan thanh: %d\n", stats.Completed)
	fmt.Fprintf(&b, "  Da huy: %d\n\n", stats.Cancelled)
	b.WriteString("DOANH THU:\n")
	fmt.Fprintf(&b, "  Tong: %dd\n", stats.TotalRevenue)
	fmt.Fprintf(&b, "  Hoa hong (%.0f%%): %dd\n\n", commission*100, stats.PlatformCommission)
	b.WriteString("TAI XE:\n")
	fmt.Fprintf(&b, "  Moi dang ky: %d\n", stats.NewDrivers)
	fmt.Fprintf(&b, "  Dang hoat dong: %d\n", stats.ActiveDrivers)
	fmt.Fprintf(&b, "  Rating TB: %.2f\n", stats.AvgRating)
	b.WriteString("========================")
	return b.String()
}
