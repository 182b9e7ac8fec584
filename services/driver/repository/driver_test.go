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

func setupDriverRepoTest(t *testing.T) (*DriverRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return NewDriverRepo(sqlxDB), mock
}

func driverRows(id uuid.UUID, status models.DriverStatus, available bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "phone", "email", "vehicle_type", "vehicle_brand",
		"license_plate", "operating_areas", "status", "is_available",
		"average_rating", "total_trips", "created_at", "updated_at",
	}).AddRow(
		id.String(), "Nguyen Van A", "84912345678", nil, "suv-7", nil,
		"51A-123.45", "{Ho Chi Minh,Da Lat}", string(status), available,
		4.8, 120, time.Now(), time.Now(),
	)
}

func TestCreateDriver(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	driver := &models.Driver{
		ID:             uuid.New(),
		FullName:       "Nguyen Van A",
		Phone:          "84912345678",
		VehicleType:    "suv-7",
		LicensePlate:   "51A-123.45",
		OperatingAreas: []string{"Ho Chi Minh", "Da Lat"},
		Status:         models.DriverStatusPending,
	}

	mock.ExpectExec("INSERT INTO drivers").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDriver(context.Background(), driver)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverByPhone_Found(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE phone =").
		WithArgs("84912345678").
		WillReturnRows(driverRows(id, models.DriverStatusActive, true))

	driver, err := repo.GetDriverByPhone(context.Background(), "84912345678")

	require.NoError(t, err)
	assert.Equal(t, id, driver.ID)
	assert.Equal(t, models.DriverStatusActive, driver.Status)
	assert.Equal(t, []string{"Ho Chi Minh", "Da Lat"}, []string(driver.OperatingAreas))
}

func TestGetDriverByPhone_NotFound(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE phone =").
		WithArgs("84900000000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetDriverByPhone(context.Background(), "84900000000")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListDrivers_StatusFilter(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE status =").
		WithArgs(models.DriverStatusPending).
		WillReturnRows(driverRows(uuid.New(), models.DriverStatusPending, false))

	drivers, err := repo.ListDrivers(context.Background(), models.DriverStatusPending)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.DriverStatusPending, drivers[0].Status)
}

func TestListDrivers_NoFilter(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM drivers ORDER BY created_at DESC").
		WillReturnRows(driverRows(uuid.New(), models.DriverStatusActive, true))

	drivers, err := repo.ListDrivers(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, drivers, 1)
}

func TestUpdateStatus_KnownDriver(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE drivers").
		WithArgs(id, models.DriverStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.UpdateStatus(context.Background(), id, models.DriverStatusActive)

	assert.NoError(t, err)
	assert.True(t, changed)
}

func TestUpdateStatus_UnknownDriver(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE drivers").
		WithArgs(id, models.DriverStatusSuspended).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.UpdateStatus(context.Background(), id, models.DriverStatusSuspended)

	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestSetAvailability_ActiveOnly(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	id := uuid.New()
	// The WHERE clause excludes non-active drivers, so a pending or
	// suspended driver comes back as zero rows touched.
	mock.ExpectExec("UPDATE drivers(.+)status = 'active'").
		WithArgs(id, true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.SetAvailability(context.Background(), id, true)

	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestSetAvailability_TogglesOnline(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE drivers(.+)status = 'active'").
		WithArgs(id, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.SetAvailability(context.Background(), id, false)

	assert.NoError(t, err)
	assert.True(t, changed)
}
