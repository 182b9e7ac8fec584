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

const bookingColumns = `
	id, pickup_location, dropoff_location, date_go, date_return,
	vehicle_type, distance_km, estimated_fare, customer_name,
	customer_phone, status, driver_id, matched_at, deposit_status,
	created_at, updated_at`

// BookingRepo implements the booking store over Postgres
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates the booking repository
func NewBookingRepo(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateBooking inserts a new pending booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, pickup_location, dropoff_location, date_go, date_return,
			vehicle_type, distance_km, estimated_fare, customer_name,
			customer_phone, status, deposit_status, created_at, updated_at
		) VALUES (
			:id, :pickup_location, :dropoff_location, :date_go, :date_return,
			:vehicle_type, :distance_km, :estimated_fare, :customer_name,
			:customer_phone, :status, :deposit_status, NOW(), NOW()
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking returns one booking by id
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListByDriver returns a driver's active and past bookings, newest first
func (r *BookingRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`, bookingColumns)
	if err := r.db.SelectContext(ctx, &bookings, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver bookings: %w", err)
	}
	return bookings, nil
}

// ListRecent returns the most recent bookings for the admin dashboard
func (r *BookingRepo) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		ORDER BY created_at DESC
		LIMIT $1
	`, bookingColumns)
	if err := r.db.SelectContext(ctx, &bookings, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}
	return bookings, nil
}

// ConfirmBooking moves a matched booking owned by the driver to confirmed
func (r *BookingRepo) ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'confirmed', matched_at = NULL, updated_at = NOW()
		WHERE id = $1 AND driver_id = $2 AND status = 'matched'
	`, bookingID, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to confirm booking: %w", err)
	}
	return oneRowChanged(res)
}

// RejectBooking returns a matched booking owned by the driver to pending and
// frees the driver
func (r *BookingRepo) RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin reject: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'pending', driver_id = NULL, matched_at = NULL, updated_at = NOW()
		WHERE id = $1 AND driver_id = $2 AND status = 'matched'
	`, bookingID, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to reject booking: %w", err)
	}
	changed, err := oneRowChanged(res)
	if err != nil || !changed {
		return changed, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET is_available = TRUE, updated_at = NOW()
		WHERE id = $1
	`, driverID); err != nil {
		return false, fmt.Errorf("failed to free driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit reject: %w", err)
	}
	return true, nil
}

// CompleteBooking closes a confirmed booking owned by the driver, counts the
// trip and frees the driver
func (r *BookingRepo) CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin complete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND driver_id = $2 AND status = 'confirmed'
	`, bookingID, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to complete booking: %w", err)
	}
	changed, err := oneRowChanged(res)
	if err != nil || !changed {
		return changed, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET is_available = TRUE, total_trips = total_trips + 1, updated_at = NOW()
		WHERE id = $1
	`, driverID); err != nil {
		return false, fmt.Errorf("failed to release driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit complete: %w", err)
	}
	return true, nil
}

// CancelBooking cancels a booking from any non-terminal state. The row is
// locked so a concurrent transition cannot slip in between the check and the
// update; a bound driver is freed in the same transaction.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin cancel: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 FOR UPDATE`, bookingColumns)
	if err := tx.GetContext(ctx, &booking, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.Status == models.BookingStatusCompleted || booking.Status == models.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: booking is already %s", models.ErrValidation, booking.Status)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'cancelled', driver_id = NULL, matched_at = NULL, updated_at = NOW()
		WHERE id = $1
	`, bookingID); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if booking.DriverID != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE drivers
			SET is_available = TRUE, updated_at = NOW()
			WHERE id = $1
		`, *booking.DriverID); err != nil {
			return nil, fmt.Errorf("failed to free driver: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	booking.DriverID = nil
	booking.MatchedAt = nil
	return &booking, nil
}

func oneRowChanged(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
