package notification

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// NotifyUC defines the interface for dispatching lifecycle notifications
type NotifyUC interface {
	Dispatch(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error)
}
