package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/matching"
)

// MatchRepo implements the assignment and sweep store operations
type MatchRepo struct {
	db *sqlx.DB
}

// NewMatchRepo creates the matching repository
func NewMatchRepo(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// AssignDriver binds the best available driver to a pending booking inside a
// single transaction. The booking row is locked first; driver candidates are
// taken with SKIP LOCKED so concurrent assignments never race on the same
// driver. Calling it again for an already-matched booking returns the
// existing binding without touching anything.
func (r *MatchRepo) AssignDriver(ctx context.Context, bookingID uuid.UUID) (*matching.Assignment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin assignment: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	err = tx.GetContext(ctx, &booking, `
		SELECT id, pickup_location, dropoff_location, date_go, date_return,
		       vehicle_type, distance_km, estimated_fare, customer_name,
		       customer_phone, status, driver_id, matched_at, deposit_status,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.Status != models.BookingStatusPending {
		assignment := &matching.Assignment{Booking: booking}
		if booking.DriverID != nil {
			driver, err := r.driverSummary(ctx, tx, *booking.DriverID)
			if err != nil {
				return nil, err
			}
			assignment.Driver = driver
			assignment.AlreadyAssigned = true
		}
		return assignment, tx.Commit()
	}

	var driver models.MatchedDriver
	err = tx.GetContext(ctx, &driver, `
		SELECT id, full_name, phone, license_plate, vehicle_brand
		FROM drivers
		WHERE status = 'active'
		  AND is_available = TRUE
		  AND vehicle_type = $1
		ORDER BY average_rating DESC, total_trips ASC, id ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, booking.VehicleType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No driver: leave the booking pending for the sweeper.
			return &matching.Assignment{Booking: booking}, tx.Commit()
		}
		return nil, fmt.Errorf("failed to select driver: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET is_available = FALSE, updated_at = NOW()
		WHERE id = $1
	`, driver.ID); err != nil {
		return nil, fmt.Errorf("failed to reserve driver: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'matched', driver_id = $2, matched_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, booking.ID, driver.ID); err != nil {
		return nil, fmt.Errorf("failed to bind booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}

	now := time.Now()
	booking.Status = models.BookingStatusMatched
	booking.DriverID = &driver.ID
	booking.MatchedAt = &now
	return &matching.Assignment{Booking: booking, Driver: &driver}, nil
}

func (r *MatchRepo) driverSummary(ctx context.Context, tx *sqlx.Tx, driverID uuid.UUID) (*models.MatchedDriver, error) {
	var driver models.MatchedDriver
	err := tx.GetContext(ctx, &driver, `
		SELECT id, full_name, phone, license_plate, vehicle_brand
		FROM drivers
		WHERE id = $1
	`, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned driver: %w", err)
	}
	return &driver, nil
}

// FindStaleMatches returns matched bookings whose driver has not confirmed
// before the cutoff
func (r *MatchRepo) FindStaleMatches(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT id, pickup_location, dropoff_location, date_go, date_return,
		       vehicle_type, distance_km, estimated_fare, customer_name,
		       customer_phone, status, driver_id, matched_at, deposit_status,
		       created_at, updated_at
		FROM bookings
		WHERE status = 'matched'
		  AND matched_at < $1
		ORDER BY matched_at ASC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale matches: %w", err)
	}
	return bookings, nil
}

// ReleaseBooking resets a stale matched booking to pending and frees its
// driver. The update is conditioned on the booking still being matched to
// that driver, so a confirmation racing the sweep wins and the release
// becomes a no-op.
func (r *MatchRepo) ReleaseBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin release: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'pending', driver_id = NULL, matched_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'matched' AND driver_id = $2
	`, bookingID, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to reset booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read release result: %w", err)
	}
	if rows == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET is_available = TRUE, updated_at = NOW()
		WHERE id = $1
	`, driverID); err != nil {
		return false, fmt.Errorf("failed to free driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit release: %w", err)
	}
	return true, nil
}
