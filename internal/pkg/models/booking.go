package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusMatched   BookingStatus = "matched"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// DepositStatus tracks the deposit payment attached to a booking
type DepositStatus string

const (
	DepositStatusNone    DepositStatus = "none"
	DepositStatusPending DepositStatus = "pending"
	DepositStatusPaid    DepositStatus = "paid"
	DepositStatusFailed  DepositStatus = "failed"
)

// Booking represents a trip booking.
// Invariant: DriverID is non-null iff status is matched/confirmed/completed;
// MatchedAt is non-null iff status is matched.
type Booking struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	PickupLocation  string        `json:"pickup_location" db:"pickup_location"`
	DropoffLocation string        `json:"dropoff_location" db:"dropoff_location"`
	DateGo          time.Time     `json:"date_go" db:"date_go"`
	DateReturn      *time.Time    `json:"date_return,omitempty" db:"date_return"`
	VehicleType     string        `json:"vehicle_type" db:"vehicle_type"`
	DistanceKm      *int          `json:"distance_km,omitempty" db:"distance_km"`
	EstimatedFare   *int64        `json:"estimated_fare,omitempty" db:"estimated_fare"`
	CustomerName    string        `json:"customer_name" db:"customer_name"`
	CustomerPhone   string        `json:"customer_phone" db:"customer_phone"`
	Status          BookingStatus `json:"status" db:"status"`
	DriverID        *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	MatchedAt       *time.Time    `json:"matched_at,omitempty" db:"matched_at"`
	DepositStatus   DepositStatus `json:"deposit_status" db:"deposit_status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the public booking submission payload
type CreateBookingRequest struct {
	Pickup        string `json:"pickup" validate:"required"`
	Dropoff       string `json:"dropoff" validate:"required"`
	DateGo        string `json:"date_go" validate:"required"`
	DateReturn    string `json:"date_return,omitempty"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	DistanceKm    int    `json:"distance_km,omitempty" validate:"omitempty,gt=0"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
}

// CreateBookingResponse reports the submission outcome. Match describes the
// immediate match attempt; a miss is reported as "searching", never an error.
type CreateBookingResponse struct {
	Booking *Booking     `json:"booking"`
	Match   *MatchResult `json:"match"`
}

// BookingStats aggregates bookings for the daily report and admin dashboard
type BookingStats struct {
	Total        int   `json:"total"`
	Pending      int   `json:"pending"`
	Matched      int   `json:"matched"`
	Confirmed    int   `json:"confirmed"`
	Completed    int   `json:"completed"`
	Cancelled    int   `json:"cancelled"`
	Revenue      int64 `json:"revenue"`
	Commission   int64 `json:"commission"`
	DriverPayout int64 `json:"driver_payout"`
}
