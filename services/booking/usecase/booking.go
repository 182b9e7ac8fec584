package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/ratelimit"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/booking"
)

const dateLayout = "2006-01-02"

// BookingUC implements the booking lifecycle
type BookingUC struct {
	cfg         models.BookingConfig
	bookingRepo booking.BookingRepo
	limiter     ratelimit.Limiter
	matchGW     booking.MatchGW
	pricingGW   booking.PricingGW
	distanceGW  booking.DistanceGW
	notifyGW    booking.NotifyGW
	logger      *logger.Logger
}

// NewBookingUC creates the booking usecase
func NewBookingUC(
	cfg models.BookingConfig,
	bookingRepo booking.BookingRepo,
	limiter ratelimit.Limiter,
	matchGW booking.MatchGW,
	pricingGW booking.PricingGW,
	distanceGW booking.DistanceGW,
	notifyGW booking.NotifyGW,
	logger *logger.Logger,
) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		limiter:     limiter,
		matchGW:     matchGW,
		pricingGW:   pricingGW,
		distanceGW:  distanceGW,
		notifyGW:    notifyGW,
		logger:      logger,
	}
}

// CreateBooking validates and stores a submission, then tries to match a
// driver right away. The submission succeeds even when no driver is found;
// the match result tells the customer whether the search continues.
func (uc *BookingUC) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	phone, err := utils.NormalizePhone(req.CustomerPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}

	dateGo, err := time.Parse(dateLayout, req.DateGo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date_go, want YYYY-MM-DD", models.ErrValidation)
	}
	var dateReturn *time.Time
	if req.DateReturn != "" {
		parsed, err := time.Parse(dateLayout, req.DateReturn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_return, want YYYY-MM-DD", models.ErrValidation)
		}
		if parsed.Before(dateGo) {
			return nil, fmt.Errorf("%w: date_return is before date_go", models.ErrValidation)
		}
		dateReturn = &parsed
	}

	if err := uc.limiter.Allow(ctx, "booking", phone, uc.cfg.RateLimitPerHour, time.Hour); err != nil {
		return nil, err
	}

	newBooking := &models.Booking{
		ID:              uuid.New(),
		PickupLocation:  req.Pickup,
		DropoffLocation: req.Dropoff,
		DateGo:          dateGo,
		DateReturn:      dateReturn,
		VehicleType:     req.VehicleType,
		CustomerName:    req.CustomerName,
		CustomerPhone:   phone,
		Status:          models.BookingStatusPending,
		DepositStatus:   models.DepositStatusNone,
	}

	uc.attachEstimate(ctx, newBooking, req)

	if err := uc.bookingRepo.CreateBooking(ctx, newBooking); err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		zap.String("booking_id", newBooking.ID.String()),
		zap.String("phone", utils.MaskPhone(phone)),
		zap.String("vehicle_type", newBooking.VehicleType))

	match, err := uc.matchGW.MatchDriver(ctx, newBooking.ID)
	if err != nil {
		// The booking stands; the sweeper will retry the match.
		uc.logger.Warn("initial match attempt failed",
			zap.String("booking_id", newBooking.ID.String()),
			zap.Error(err))
		match = &models.MatchResult{Success: false, Message: "no driver available, still searching"}
	}
	if match.Success && match.Driver != nil {
		now := time.Now()
		newBooking.Status = models.BookingStatusMatched
		newBooking.DriverID = &match.Driver.ID
		newBooking.MatchedAt = &now
	}

	return &models.CreateBookingResponse{Booking: newBooking, Match: match}, nil
}

// attachEstimate fills distance and fare when they can be resolved. Both are
// best effort; a booking without an estimate is still bookable.
func (uc *BookingUC) attachEstimate(ctx context.Context, b *models.Booking, req models.CreateBookingRequest) {
	distanceKm := req.DistanceKm
	if distanceKm <= 0 {
		result, err := uc.distanceGW.Lookup(ctx, models.DistanceRequest{
			Origin:      req.Pickup,
			Destination: req.Dropoff,
		})
		if err != nil {
			uc.logger.Debug("distance lookup failed",
				zap.String("pickup", req.Pickup),
				zap.String("dropoff", req.Dropoff),
				zap.Error(err))
			return
		}
		distanceKm = result.DistanceKm
	}
	b.DistanceKm = &distanceKm

	estimate, err := uc.pricingGW.Estimate(ctx, models.EstimateRequest{
		DistanceKm:   distanceKm,
		VehicleType:  req.VehicleType,
		PickupTime:   b.DateGo.Format(time.RFC3339),
		IsReturnTrip: req.DateReturn != "",
	})
	if err != nil {
		uc.logger.Debug("fare estimate failed",
			zap.String("booking_id", b.ID.String()),
			zap.Error(err))
		return
	}
	b.EstimatedFare = &estimate.FinalFare
}

// GetBooking returns one booking by id
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, id)
}

// ListDriverBookings returns the bookings bound to a driver
func (uc *BookingUC) ListDriverBookings(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error) {
	return uc.bookingRepo.ListByDriver(ctx, driverID)
}

// ListRecentBookings returns the latest bookings for the admin dashboard
func (uc *BookingUC) ListRecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.bookingRepo.ListRecent(ctx, limit)
}

// ConfirmBooking accepts a matched booking on behalf of its driver
func (uc *BookingUC) ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	b, err := uc.ownedBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusMatched {
		return nil, fmt.Errorf("%w: booking is %s, expected matched", models.ErrValidation, b.Status)
	}

	changed, err := uc.bookingRepo.ConfirmBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: booking is no longer matched", models.ErrValidation)
	}
	b.Status = models.BookingStatusConfirmed

	uc.logger.Info("booking confirmed",
		zap.String("booking_id", bookingID.String()),
		zap.String("driver_id", driverID.String()))

	uc.dispatch(ctx, models.NotificationEvent{
		Type:      models.NotifyBookingConfirmed,
		Phone:     b.CustomerPhone,
		BookingID: &b.ID,
		Pickup:    b.PickupLocation,
		Dropoff:   b.DropoffLocation,
		DriverID:  &driverID,
	})
	return b, nil
}

// RejectBooking lets the driver decline a matched booking. The booking goes
// back to pending and another match is attempted immediately.
func (uc *BookingUC) RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.MatchResult, error) {
	b, err := uc.ownedBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusMatched {
		return nil, fmt.Errorf("%w: booking is %s, expected matched", models.ErrValidation, b.Status)
	}

	changed, err := uc.bookingRepo.RejectBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: booking is no longer matched", models.ErrValidation)
	}

	uc.logger.Info("booking rejected",
		zap.String("booking_id", bookingID.String()),
		zap.String("driver_id", driverID.String()))

	match, err := uc.matchGW.MatchDriver(ctx, bookingID)
	if err != nil {
		uc.logger.Warn("re-match after reject failed",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err))
		return &models.MatchResult{Success: false, Message: "no driver available, still searching"}, nil
	}
	return match, nil
}

// CompleteBooking closes a confirmed trip on behalf of its driver
func (uc *BookingUC) CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	b, err := uc.ownedBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s, expected confirmed", models.ErrValidation, b.Status)
	}

	changed, err := uc.bookingRepo.CompleteBooking(ctx, bookingID, driverID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, fmt.Errorf("%w: booking is no longer confirmed", models.ErrValidation)
	}
	b.Status = models.BookingStatusCompleted

	var fare, commission int64
	if b.EstimatedFare != nil {
		fare = *b.EstimatedFare
		commission = int64(math.Round(float64(fare) * uc.cfg.CommissionPercent))
	}
	uc.logger.Info("booking completed",
		zap.String("booking_id", bookingID.String()),
		zap.String("driver_id", driverID.String()),
		zap.Int64("fare", fare),
		zap.Int64("commission", commission),
		zap.Int64("driver_earning", fare-commission))

	uc.dispatch(ctx, models.NotificationEvent{
		Type:      models.NotifyBookingCompleted,
		Phone:     b.CustomerPhone,
		BookingID: &b.ID,
		Pickup:    b.PickupLocation,
		Dropoff:   b.DropoffLocation,
		DriverID:  &driverID,
	})
	return b, nil
}

// CancelBooking cancels a booking from any non-terminal state
func (uc *BookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	b, err := uc.bookingRepo.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("booking cancelled", zap.String("booking_id", bookingID.String()))
	return b, nil
}

func (uc *BookingUC) ownedBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	b, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.DriverID == nil || *b.DriverID != driverID {
		return nil, fmt.Errorf("%w: booking is not assigned to this driver", models.ErrNotOwner)
	}
	return b, nil
}

func (uc *BookingUC) dispatch(ctx context.Context, event models.NotificationEvent) {
	if _, err := uc.notifyGW.Dispatch(ctx, event); err != nil {
		uc.logger.Warn("notification dispatch failed",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
