package driver

import (
	"context"

	"github.com/google/uuid"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// DriverRepo defines the driver store operations
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	GetDriverByPhone(ctx context.Context, phone string) (*models.Driver, error)
	ListDrivers(ctx context.Context, status models.DriverStatus) ([]models.Driver, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DriverStatus) (bool, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error)
}

// OTPRepo defines the one-time code store operations
type OTPRepo interface {
	CreateOTP(ctx context.Context, otp *models.OTP) error

	// ConsumeOTP atomically marks the newest matching unverified, unexpired
	// code as used. It reports false when no such code exists; a code can be
	// consumed at most once.
	ConsumeOTP(ctx context.Context, phone, code string, action models.OTPAction) (bool, error)
}
