package payment

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// Order is the provider-agnostic checkout request
type Order struct {
	OrderID     string
	Amount      int64
	Description string
	ReturnURL   string
	ClientIP    string
}

// MomoGW talks to the Momo wallet gateway
type MomoGW interface {
	CreatePayment(ctx context.Context, order Order) (payURL string, err error)
	VerifyCallback(body []byte) (*models.CallbackResult, error)
}

// VNPayGW builds VNPay hosted checkout URLs and verifies return callbacks
type VNPayGW interface {
	BuildPayURL(order Order) (string, error)
	VerifyCallback(params url.Values) (*models.CallbackResult, error)
}

// ZaloPayGW talks to the ZaloPay gateway
type ZaloPayGW interface {
	CreatePayment(ctx context.Context, order Order) (payURL string, err error)
	VerifyCallback(body []byte) (*models.CallbackResult, error)
}

// BookingGW looks up the booking a deposit is paid against
type BookingGW interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
