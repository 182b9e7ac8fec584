package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportRepoTest(t *testing.T) (*ReportRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return NewReportRepo(sqlxDB), mock
}

func TestGetBookingStats(t *testing.T) {
	repo, mock := setupReportRepoTest(t)

	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT(.+)FROM bookings(.+)created_at >=").
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"total", "pending", "matched", "confirmed", "completed", "cancelled", "revenue",
		}).AddRow(12, 2, 1, 3, 5, 1, int64(18500000)))

	stats, err := repo.GetBookingStats(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 5, stats.Completed)
	assert.Equal(t, int64(18500000), stats.Revenue)
}

func TestCountNewDrivers(t *testing.T) {
	repo, mock := setupReportRepoTest(t)

	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT COUNT(.+) FROM drivers").
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountNewDrivers(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountActiveDrivers(t *testing.T) {
	repo, mock := setupReportRepoTest(t)

	mock.ExpectQuery("SELECT COUNT(.+) FROM drivers WHERE status = 'active'").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(34))

	count, err := repo.CountActiveDrivers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 34, count)
}

func TestAvgActiveRating(t *testing.T) {
	repo, mock := setupReportRepoTest(t)

	mock.ExpectQuery("SELECT COALESCE(.+)FROM drivers").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.82))

	avg, err := repo.AvgActiveRating(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4.82, avg)
}
