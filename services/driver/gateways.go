package driver

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// SMSGW sends a raw SMS message to a phone number
type SMSGW interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// NotifyGW dispatches account lifecycle notifications, best effort
type NotifyGW interface {
	Dispatch(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error)
}
