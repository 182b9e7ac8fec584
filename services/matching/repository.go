package matching

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// Assignment is the outcome of an atomic driver assignment attempt.
// Driver is nil when no eligible driver was available. AlreadyAssigned is
// true when the booking was matched before this call; the existing binding
// is returned untouched.
type Assignment struct {
	Booking         models.Booking
	Driver          *models.MatchedDriver
	AlreadyAssigned bool
}

// MatchRepo defines the store operations behind the matching engine and the
// reassignment sweeper.
type MatchRepo interface {
	// AssignDriver atomically selects an available driver and binds it to a
	// pending booking. Two concurrent calls can never pick the same driver.
	AssignDriver(ctx context.Context, bookingID uuid.UUID) (*Assignment, error)

	// FindStaleMatches returns bookings matched before the cutoff and still
	// unconfirmed.
	FindStaleMatches(ctx context.Context, cutoff time.Time) ([]models.Booking, error)

	// ReleaseBooking frees the bound driver and resets the booking to pending
	// in one transaction, conditioned on the booking still holding that
	// driver in matched state. Repeats are no-ops.
	ReleaseBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error)
}
