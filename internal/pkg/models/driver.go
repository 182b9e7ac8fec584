package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DriverStatus represents the administrative state of a driver account
type DriverStatus string

const (
	DriverStatusPending   DriverStatus = "pending"
	DriverStatusActive    DriverStatus = "active"
	DriverStatusSuspended DriverStatus = "suspended"
)

// Driver represents a registered driver.
// A driver with IsAvailable=false is bound to exactly one non-terminal booking;
// the owning booking's transition is the only thing that releases it.
type Driver struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	FullName       string         `json:"full_name" db:"full_name"`
	Phone          string         `json:"phone" db:"phone"`
	Email          *string        `json:"email,omitempty" db:"email"`
	VehicleType    string         `json:"vehicle_type" db:"vehicle_type"`
	VehicleBrand   *string        `json:"vehicle_brand,omitempty" db:"vehicle_brand"`
	LicensePlate   string         `json:"license_plate" db:"license_plate"`
	OperatingAreas pq.StringArray `json:"operating_areas" db:"operating_areas"`
	Status         DriverStatus   `json:"status" db:"status"`
	IsAvailable    bool           `json:"is_available" db:"is_available"`
	AverageRating  float64        `json:"average_rating" db:"average_rating"`
	TotalTrips     int            `json:"total_trips" db:"total_trips"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// RegisterDriverRequest is the driver registration payload
type RegisterDriverRequest struct {
	FullName     string   `json:"full_name" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	VehicleType  string   `json:"vehicle_type" validate:"required"`
	VehicleBrand string   `json:"vehicle_brand,omitempty"`
	LicensePlate string   `json:"license_plate" validate:"required"`
	Areas        []string `json:"areas,omitempty"`
}

// AvailabilityRequest toggles a driver's online state
type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}
