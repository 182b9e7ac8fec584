package models

import "github.com/google/uuid"

// MatchedDriver is the driver summary returned to the customer after a match
type MatchedDriver struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        string    `json:"phone" db:"phone"`
	LicensePlate string    `json:"license_plate" db:"license_plate"`
	VehicleBrand *string   `json:"vehicle_brand,omitempty" db:"vehicle_brand"`
}

// MatchResult reports a matching attempt. Success=false with an empty driver
// means no eligible driver was available; the booking stays pending.
type MatchResult struct {
	Success bool           `json:"success"`
	Driver  *MatchedDriver `json:"driver,omitempty"`
	Message string         `json:"message,omitempty"`
}

// SweepOutcome labels the result of one booking in a reassignment sweep
type SweepOutcome string

const (
	SweepRematched SweepOutcome = "re-matched"
	SweepNoDriver  SweepOutcome = "no driver available"
	SweepConfirmed SweepOutcome = "confirmed meanwhile"
	SweepFailed    SweepOutcome = "failed"
)

// SweepDetail is the per-booking record of a sweep pass
type SweepDetail struct {
	BookingID uuid.UUID    `json:"booking_id"`
	Outcome   SweepOutcome `json:"result"`
}

// SweepReport summarises one full reassignment sweep
type SweepReport struct {
	Total      int           `json:"total"`
	Reassigned int           `json:"reassigned"`
	Details    []SweepDetail `json:"details,omitempty"`
}
