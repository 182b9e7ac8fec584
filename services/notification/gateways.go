package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// SMSGW sends a raw SMS message to a phone number
type SMSGW interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// DriverGW looks up the driver details included in customer messages
type DriverGW interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
}
