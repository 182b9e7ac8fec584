package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProvider identifies a supported payment gateway. The provider is
// fixed once at the callback route boundary, never inferred from payload shape.
type PaymentProvider string

const (
	ProviderMomo    PaymentProvider = "momo"
	ProviderVNPay   PaymentProvider = "vnpay"
	ProviderZaloPay PaymentProvider = "zalopay"
)

// PaymentStatus represents the state of a payment attempt
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment represents one deposit payment attempt for a booking.
// A booking may accumulate several attempts but at most one reaches paid.
type Payment struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	BookingID       uuid.UUID       `json:"booking_id" db:"booking_id"`
	Provider        PaymentProvider `json:"provider" db:"provider"`
	ProviderOrderID string          `json:"provider_order_id" db:"provider_order_id"`
	Status          PaymentStatus   `json:"status" db:"status"`
	Amount          int64           `json:"amount" db:"amount"`
	DepositAmount   int64           `json:"deposit_amount" db:"deposit_amount"`
	PayURL          *string         `json:"pay_url,omitempty" db:"pay_url"`
	CustomerPhone   string          `json:"customer_phone" db:"customer_phone"`
	CallbackData    []byte          `json:"-" db:"callback_data"`
	PaidAt          *time.Time      `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// CreatePaymentRequest starts a deposit payment flow for a booking
type CreatePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Provider  string `json:"provider" validate:"required,oneof=momo vnpay zalopay"`
	ReturnURL string `json:"return_url,omitempty" validate:"omitempty,url"`
}

// CreatePaymentResponse carries the provider redirect URL back to the client
type CreatePaymentResponse struct {
	PayURL        string          `json:"pay_url"`
	DepositAmount int64           `json:"deposit_amount"`
	TotalFare     int64           `json:"total_fare"`
	Provider      PaymentProvider `json:"provider"`
	OrderID       string          `json:"order_id"`
}

// CallbackResult is the provider-agnostic outcome of a verified callback
type CallbackResult struct {
	OrderID string
	Success bool
	RawBody []byte
}
