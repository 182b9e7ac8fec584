package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPAction scopes a one-time code to the flow that requested it
type OTPAction string

const (
	OTPActionDriverRegister OTPAction = "driver_register"
	OTPActionDriverLogin    OTPAction = "driver_login"
)

// OTP represents a one-time code issued for phone verification.
// The code is delivered over SMS only and consumed exactly once.
type OTP struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Phone      string    `json:"phone" db:"phone"`
	Action     OTPAction `json:"action" db:"action"`
	Code       string    `json:"-" db:"code"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SendOTPRequest asks for a code to be sent to a phone number
type SendOTPRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Action string `json:"action,omitempty" validate:"omitempty,oneof=driver_register driver_login"`
}

// VerifyOTPRequest verifies a previously issued code
type VerifyOTPRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Action string `json:"action,omitempty" validate:"omitempty,oneof=driver_register driver_login"`
}

// AuthResponse is returned after successful driver OTP verification
type AuthResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	Driver    *Driver `json:"driver,omitempty"`
}
