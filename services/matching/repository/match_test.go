package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

func setupMatchRepoTest(t *testing.T) (*MatchRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return NewMatchRepo(sqlxDB), mock
}

func lockedBookingRows(id uuid.UUID, status models.BookingStatus, driverID *uuid.UUID) *sqlmock.Rows {
	var matchedAt interface{}
	if status == models.BookingStatusMatched {
		matchedAt = time.Now()
	}
	var driver interface{}
	if driverID != nil {
		driver = driverID.String()
	}
	return sqlmock.NewRows([]string{
		"id", "pickup_location", "dropoff_location", "date_go", "date_return",
		"vehicle_type", "distance_km", "estimated_fare", "customer_name",
		"customer_phone", "status", "driver_id", "matched_at", "deposit_status",
		"created_at", "updated_at",
	}).AddRow(
		id.String(), "Ho Chi Minh", "Da Lat", time.Now(), nil,
		"suv-7", nil, nil, "Tran Thi B",
		"84901234567", string(status), driver, matchedAt, string(models.DepositStatusNone),
		time.Now(), time.Now(),
	)
}

func driverSummaryRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name", "phone", "license_plate", "vehicle_brand"}).
		AddRow(id.String(), "Nguyen Van A", "84912345678", "51A-123.45", nil)
}

func TestAssignDriver_BindsBestCandidate(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingID, models.BookingStatusPending, nil))
	mock.ExpectQuery("SELECT (.+) FROM drivers(.+)FOR UPDATE SKIP LOCKED").
		WithArgs("suv-7").
		WillReturnRows(driverSummaryRows(driverID))
	mock.ExpectExec("UPDATE drivers").
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assignment, err := repo.AssignDriver(context.Background(), bookingID)

	require.NoError(t, err)
	assert.False(t, assignment.AlreadyAssigned)
	assert.Equal(t, models.BookingStatusMatched, assignment.Booking.Status)
	assert.Equal(t, driverID, assignment.Driver.ID)
	assert.NotNil(t, assignment.Booking.MatchedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignDriver_NoCandidateLeavesBookingPending(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingID, models.BookingStatusPending, nil))
	mock.ExpectQuery("SELECT (.+) FROM drivers(.+)FOR UPDATE SKIP LOCKED").
		WithArgs("suv-7").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	assignment, err := repo.AssignDriver(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Nil(t, assignment.Driver)
	assert.Equal(t, models.BookingStatusPending, assignment.Booking.Status)
}

func TestAssignDriver_AlreadyMatchedReturnsExistingBinding(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingID, models.BookingStatusMatched, &driverID))
	mock.ExpectQuery("SELECT (.+) FROM drivers").
		WithArgs(driverID).
		WillReturnRows(driverSummaryRows(driverID))
	mock.ExpectCommit()

	assignment, err := repo.AssignDriver(context.Background(), bookingID)

	require.NoError(t, err)
	assert.True(t, assignment.AlreadyAssigned)
	assert.Equal(t, driverID, assignment.Driver.ID)
}

func TestAssignDriver_UnknownBooking(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.AssignDriver(context.Background(), bookingID)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReleaseBooking_FreesDriver(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE drivers").
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	released, err := repo.ReleaseBooking(context.Background(), bookingID, driverID)

	assert.NoError(t, err)
	assert.True(t, released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseBooking_ConfirmationWinsTheRace(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mock.ExpectBegin()
	// The booking is no longer matched to this driver: no rows touched,
	// and the driver stays reserved by whatever replaced the match.
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, driverID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	released, err := repo.ReleaseBooking(context.Background(), bookingID, driverID)

	assert.NoError(t, err)
	assert.False(t, released)
}

func TestFindStaleMatches(t *testing.T) {
	repo, mock := setupMatchRepoTest(t)

	cutoff := time.Now().Add(-30 * time.Minute)
	bookingID := uuid.New()
	driverID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)status = 'matched'").
		WithArgs(cutoff).
		WillReturnRows(lockedBookingRows(bookingID, models.BookingStatusMatched, &driverID))

	stale, err := repo.FindStaleMatches(context.Background(), cutoff)

	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, bookingID, stale[0].ID)
	assert.Equal(t, driverID, *stale[0].DriverID)
}
