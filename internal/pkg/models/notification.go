package models

import "github.com/google/uuid"

// NotificationType identifies the booking lifecycle event being announced
type NotificationType string

const (
	NotifyBookingMatched   NotificationType = "booking_matched"
	NotifyBookingConfirmed NotificationType = "booking_confirmed"
	NotifyBookingCompleted NotificationType = "booking_completed"
	NotifyDriverApproved   NotificationType = "driver_approved"
)

// NotificationEvent describes a status transition to announce over SMS.
// Delivery is best effort: channel failure never blocks the transition.
type NotificationEvent struct {
	Type      NotificationType `json:"type" validate:"required,oneof=booking_matched booking_confirmed booking_completed driver_approved"`
	Phone     string           `json:"phone" validate:"required"`
	BookingID *uuid.UUID       `json:"booking_id,omitempty"`
	Pickup    string           `json:"pickup,omitempty"`
	Dropoff   string           `json:"dropoff,omitempty"`
	DriverID  *uuid.UUID       `json:"driver_id,omitempty"`
}

// NotificationResult reports dispatch: Sent=false means the SMS channel was
// down or unconfigured and the message was logged instead.
type NotificationResult struct {
	Type NotificationType `json:"type"`
	Sent bool             `json:"sms_sent"`
}
