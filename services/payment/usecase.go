package payment

import (
	"context"
	"net/url"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// PaymentUC defines the interface for the deposit payment flow. Each
// callback entrypoint is bound to exactly one provider; the provider is
// never inferred from the payload.
type PaymentUC interface {
	CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (*models.CreatePaymentResponse, error)

	// The callback handlers verify the provider signature, settle the payment
	// and report whether this call applied the settlement (false on replay).
	HandleMomoCallback(ctx context.Context, body []byte) (applied bool, err error)
	HandleVNPayCallback(ctx context.Context, params url.Values) (applied bool, err error)
	HandleZaloPayCallback(ctx context.Context, body []byte) (applied bool, err error)
}
