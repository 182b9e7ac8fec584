package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// BookingRepo defines the booking store operations
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)

	// ConfirmBooking flips matched to confirmed, conditioned on ownership.
	// It reports false when the row was not in the expected state.
	ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error)

	// RejectBooking returns a matched booking to pending and frees the driver
	// in one transaction, conditioned on ownership.
	RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error)

	// CompleteBooking closes a confirmed booking, increments the driver's trip
	// counter and frees the driver in one transaction, conditioned on ownership.
	CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error)

	// CancelBooking cancels a booking from any non-terminal state and frees a
	// bound driver. It returns the cancelled booking.
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
}
