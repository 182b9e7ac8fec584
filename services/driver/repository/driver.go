package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

const driverColumns = `
	id, full_name, phone, email, vehicle_type, vehicle_brand, license_plate,
	operating_areas, status, is_available, average_rating, total_trips,
	created_at, updated_at`

// DriverRepo implements the driver store over Postgres
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepo creates the driver repository
func NewDriverRepo(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// CreateDriver inserts a new pending driver registration
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, full_name, phone, email, vehicle_type, vehicle_brand,
			license_plate, operating_areas, status, is_available,
			average_rating, total_trips, created_at, updated_at
		) VALUES (
			:id, :full_name, :phone, :email, :vehicle_type, :vehicle_brand,
			:license_plate, :operating_areas, :status, :is_available,
			:average_rating, :total_trips, NOW(), NOW()
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// GetDriver returns one driver by id
func (r *DriverRepo) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE id = $1`, driverColumns)
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("driver %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// GetDriverByPhone returns one driver by canonical phone number
func (r *DriverRepo) GetDriverByPhone(ctx context.Context, phone string) (*models.Driver, error) {
	var driver models.Driver
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE phone = $1`, driverColumns)
	if err := r.db.GetContext(ctx, &driver, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("driver with phone: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver by phone: %w", err)
	}
	return &driver, nil
}

// ListDrivers returns drivers, optionally filtered by status
func (r *DriverRepo) ListDrivers(ctx context.Context, status models.DriverStatus) ([]models.Driver, error) {
	var drivers []models.Driver
	var err error
	if status == "" {
		query := fmt.Sprintf(`SELECT %s FROM drivers ORDER BY created_at DESC`, driverColumns)
		err = r.db.SelectContext(ctx, &drivers, query)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM drivers WHERE status = $1 ORDER BY created_at DESC`, driverColumns)
		err = r.db.SelectContext(ctx, &drivers, query, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// UpdateStatus moves a driver between administrative states. Suspension also
// takes the driver offline.
func (r *DriverRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DriverStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE drivers
		SET status = $2,
		    is_available = CASE WHEN $2 = 'suspended' THEN FALSE ELSE is_available END,
		    updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return false, fmt.Errorf("failed to update driver status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}

// SetAvailability flips a driver's online state. Only active drivers can
// toggle themselves available.
func (r *DriverRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE drivers
		SET is_available = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'active'
	`, id, available)
	if err != nil {
		return false, fmt.Errorf("failed to set availability: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
