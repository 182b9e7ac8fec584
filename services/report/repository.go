package report

import (
	"context"
	"time"
)

// BookingDayStats is the raw booking aggregate for one time window
type BookingDayStats struct {
	Total     int   `db:"total"`
	Pending   int   `db:"pending"`
	Matched   int   `db:"matched"`
	Confirmed int   `db:"confirmed"`
	Completed int   `db:"completed"`
	Cancelled int   `db:"cancelled"`
	Revenue   int64 `db:"revenue"`
}

// ReportRepo defines the aggregation queries behind the daily report
type ReportRepo interface {
	GetBookingStats(ctx context.Context, from, to time.Time) (*BookingDayStats, error)
	CountNewDrivers(ctx context.Context, from, to time.Time) (int, error)
	CountActiveDrivers(ctx context.Context) (int, error)
	AvgActiveRating(ctx context.Context) (float64, error)
}
