package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/jwt"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/ratelimit"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/driver"
)

// DriverUC implements driver onboarding, availability and OTP authentication
type DriverUC struct {
	bookingCfg models.BookingConfig
	otpCfg     models.OTPConfig
	jwtCfg     models.JWTConfig
	driverRepo driver.DriverRepo
	otpRepo    driver.OTPRepo
	limiter    ratelimit.Limiter
	smsGW      driver.SMSGW
	notifyGW   driver.NotifyGW
	logger     *logger.Logger
}

// NewDriverUC creates the driver usecase
func NewDriverUC(
	bookingCfg models.BookingConfig,
	otpCfg models.OTPConfig,
	jwtCfg models.JWTConfig,
	driverRepo driver.DriverRepo,
	otpRepo driver.OTPRepo,
	limiter ratelimit.Limiter,
	smsGW driver.SMSGW,
	notifyGW driver.NotifyGW,
	logger *logger.Logger,
) *DriverUC {
	return &DriverUC{
		bookingCfg: bookingCfg,
		otpCfg:     otpCfg,
		jwtCfg:     jwtCfg,
		driverRepo: driverRepo,
		otpRepo:    otpRepo,
		limiter:    limiter,
		smsGW:      smsGW,
		notifyGW:   notifyGW,
		logger:     logger,
	}
}

// Register stores a new driver application in pending state. An admin must
// approve the account before it can take bookings.
func (uc *DriverUC) Register(ctx context.Context, req models.RegisterDriverRequest) (*models.Driver, error) {
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}

	if err := uc.limiter.Allow(ctx, "driver_register", phone, uc.bookingCfg.RegistrationsPerDay, 24*time.Hour); err != nil {
		return nil, err
	}

	if existing, err := uc.driverRepo.GetDriverByPhone(ctx, phone); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: phone number already registered", models.ErrValidation)
	} else if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	newDriver := &models.Driver{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Phone:          phone,
		VehicleType:    req.VehicleType,
		LicensePlate:   req.LicensePlate,
		OperatingAreas: pq.StringArray(req.Areas),
		Status:         models.DriverStatusPending,
		IsAvailable:    false,
	}
	if req.Email != "" {
		newDriver.Email = &req.Email
	}
	if req.VehicleBrand != "" {
		newDriver.VehicleBrand = &req.VehicleBrand
	}

	if err := uc.driverRepo.CreateDriver(ctx, newDriver); err != nil {
		return nil, err
	}

	uc.logger.Info("driver registered",
		zap.String("driver_id", newDriver.ID.String()),
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("vehicle_type", newDriver.VehicleType))
	return newDriver, nil
}

// GetDriver returns one driver by id
func (uc *DriverUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, id)
}

// ListDrivers returns drivers, optionally filtered by status
func (uc *DriverUC) ListDrivers(ctx context.Context, status string) ([]models.Driver, error) {
	switch models.DriverStatus(status) {
	case "", models.DriverStatusPending, models.DriverStatusActive, models.DriverStatusSuspended:
	default:
		return nil, fmt.Errorf("%w: unknown driver status %q", models.ErrValidation, status)
	}
	return uc.driverRepo.ListDrivers(ctx, models.DriverStatus(status))
}

// Approve activates a pending driver and announces it over SMS
func (uc *DriverUC) Approve(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	d, err := uc.setStatus(ctx, id, models.DriverStatusActive)
	if err != nil {
		return nil, err
	}

	if _, err := uc.notifyGW.Dispatch(ctx, models.NotificationEvent{
		Type:     models.NotifyDriverApproved,
		Phone:    d.Phone,
		DriverID: &d.ID,
	}); err != nil {
		uc.logger.Warn("approval notification failed",
			zap.String("driver_id", id.String()),
			zap.Error(err))
	}
	return d, nil
}

// Suspend blocks a driver from taking bookings
func (uc *DriverUC) Suspend(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.setStatus(ctx, id, models.DriverStatusSuspended)
}

func (uc *DriverUC) setStatus(ctx context.Context, id uuid.UUID, status models.DriverStatus) (*models.Driver, error) {
	changed, err := uc.driverRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("driver %s: %w", id, models.ErrNotFound)
	}

	uc.logger.Info("driver status updated",
		zap.String("driver_id", id.String()),
		zap.String("status", string(status)))
	return uc.driverRepo.GetDriver(ctx, id)
}

// SetAvailability flips the driver's online state. Only active drivers may
// toggle themselves.
func (uc *DriverUC) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	changed, err := uc.driverRepo.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("%w: driver is not active", models.ErrValidation)
	}
	uc.logger.Info("driver availability updated",
		zap.String("driver_id", id.String()),
		zap.Bool("is_available", available))
	return nil
}

// SendOTP issues a one-time code and delivers it over SMS. Issuance is rate
// limited per phone; an SMS channel failure does not burn the code.
func (uc *DriverUC) SendOTP(ctx context.Context, req models.SendOTPRequest) error {
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}
	action := otpAction(req.Action)

	if err := uc.limiter.Allow(ctx, "otp", phone, uc.otpCfg.RequestsPerHour, time.Hour); err != nil {
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &models.OTP{
		ID:        uuid.New(),
		Phone:     phone,
		Action:    action,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(uc.otpCfg.ExpiryMinutes) * time.Minute),
	}
	if err := uc.otpRepo.CreateOTP(ctx, otp); err != nil {
		return err
	}

	message := fmt.Sprintf("Ma xac thuc cua ban la %s. Ma co hieu luc trong %d phut.", code, uc.otpCfg.ExpiryMinutes)
	if err := uc.smsGW.SendSMS(ctx, phone, message); err != nil {
		uc.logger.Warn("otp sms delivery failed",
			zap.String("phone", utils.MaskPhone(phone)),
			zap.Error(err))
	}

	uc.logger.Info("otp issued",
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("action", string(action)))
	return nil
}

// VerifyOTP consumes a code and issues a driver JWT. The code is single use:
// a second verification with the same code fails even inside the expiry
// window. Only active drivers get a token; the code is still consumed so a
// suspended account cannot stockpile live codes.
func (uc *DriverUC) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}
	action := otpAction(req.Action)

	consumed, err := uc.otpRepo.ConsumeOTP(ctx, phone, req.Code, action)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, fmt.Errorf("%w: otp code is invalid or expired", models.ErrInvalidOrExpired)
	}

	d, err := uc.driverRepo.GetDriverByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if d.Status != models.DriverStatusActive {
		return nil, fmt.Errorf("%w: driver account is %s", models.ErrUnauthorized, d.Status)
	}

	token, expiresAt, err := jwt.GenerateToken(d.ID, d.Phone, uc.jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("otp verified",
		zap.String("driver_id", d.ID.String()),
		zap.String("action", string(action)))
	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, Driver: d}, nil
}

func otpAction(raw string) models.OTPAction {
	if raw == "" {
		return models.OTPActionDriverLogin
	}
	return models.OTPAction(raw)
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
