package payment

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// PaymentRepo defines the payment store operations
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetByProviderOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// ApplyCallback records a verified provider callback. The payment row is
	// locked, so a replayed callback finds it already settled and applies
	// nothing; the booking's deposit status moves in the same transaction.
	// applied is false when the payment was already settled.
	ApplyCallback(ctx context.Context, orderID string, success bool, raw []byte) (applied bool, payment *models.Payment, err error)
}
