package driver

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// DriverUC defines the interface for driver onboarding and account management
type DriverUC interface {
	Register(ctx context.Context, req models.RegisterDriverRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, status string) ([]models.Driver, error)
	Approve(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	Suspend(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error

	SendOTP(ctx context.Context, req models.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error)
}
