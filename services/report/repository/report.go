package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/services/report"
)

// ReportRepo implements the report aggregation queries over Postgres
type ReportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates the report repository
func NewReportRepo(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// GetBookingStats aggregates bookings created inside the window. Revenue
// counts the estimated fares of completed bookings only.
func (r *ReportRepo) GetBookingStats(ctx context.Context, from, to time.Time) (*report.BookingDayStats, error) {
	var stats report.BookingDayStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'matched') AS matched,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
			COALESCE(SUM(estimated_fare) FILTER (WHERE status = 'completed'), 0) AS revenue
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}
	return &stats, nil
}

// CountNewDrivers counts driver registrations inside the window
func (r *ReportRepo) CountNewDrivers(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM drivers
		WHERE created_at >= $1 AND created_at < $2
	`, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count new drivers: %w", err)
	}
	return count, nil
}

// CountActiveDrivers counts drivers currently in active state
func (r *ReportRepo) CountActiveDrivers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM drivers WHERE status = 'active'
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active drivers: %w", err)
	}
	return count, nil
}

// AvgActiveRating averages the rating of active drivers, 5.0 when there are none
func (r *ReportRepo) AvgActiveRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.GetContext(ctx, &avg, `
		SELECT COALESCE(ROUND(AVG(average_rating)::numeric, 2), 5.0)
		FROM drivers
		WHERE status = 'active'
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to average driver rating: %w", err)
	}
	return avg, nil
}
