package matching

import (
	"context"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// NotifyGW dispatches booking lifecycle notifications. Delivery is best
// effort; callers must not fail a state transition on a dispatch error.
type NotifyGW interface {
	Dispatch(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error)
}
