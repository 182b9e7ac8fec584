package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// BookingUC defines the interface for the booking lifecycle
type BookingUC interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.CreateBookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListDriverBookings(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error)
	ListRecentBookings(ctx context.Context, limit int) ([]models.Booking, error)

	ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.MatchResult, error)
	CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
}
