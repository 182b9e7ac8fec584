package report

import (
	"context"
	"time"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// ReportUC defines the interface for the admin daily report
type ReportUC interface {
	// DailyReport aggregates the day containing the given time. The cron
	// entrypoint passes yesterday.
	DailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error)
}
