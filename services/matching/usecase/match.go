package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/matching"
)

// MatchUC implements the matching engine and the reassignment sweeper
type MatchUC struct {
	cfg       models.BookingConfig
	matchRepo matching.MatchRepo
	notifyGW  matching.NotifyGW
	logger    *logger.Logger
}

// NewMatchUC creates the matching usecase
func NewMatchUC(
	cfg models.BookingConfig,
	matchRepo matching.MatchRepo,
	notifyGW matching.NotifyGW,
	logger *logger.Logger,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		notifyGW:  notifyGW,
		logger:    logger,
	}
}

// MatchDriver attempts to assign a driver to the booking. A miss is a normal
// outcome, not an error: the booking stays pending and the sweeper retries.
func (uc *MatchUC) MatchDriver(ctx context.Context, bookingID uuid.UUID) (*models.MatchResult, error) {
	assignment, err := uc.matchRepo.AssignDriver(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to match booking %s: %w", bookingID, err)
	}

	if assignment.AlreadyAssigned {
		uc.logger.Info("booking already matched",
			zap.String("booking_id", bookingID.String()),
			zap.String("driver_id", assignment.Driver.ID.String()))
		return &models.MatchResult{
			Success: true,
			Driver:  assignment.Driver,
			Message: "booking already has a driver assigned",
		}, nil
	}

	if assignment.Booking.Status == models.BookingStatusCancelled ||
		assignment.Booking.Status == models.BookingStatusCompleted {
		return &models.MatchResult{
			Success: false,
			Message: fmt.Sprintf("booking is %s", assignment.Booking.Status),
		}, nil
	}

	if assignment.Driver == nil {
		uc.logger.Info("no driver available",
			zap.String("booking_id", bookingID.String()),
			zap.String("vehicle_type", assignment.Booking.VehicleType))
		return &models.MatchResult{
			Success: false,
			Message: "no driver available, still searching",
		}, nil
	}

	uc.logger.Info("driver matched",
		zap.String("booking_id", bookingID.String()),
		zap.String("driver_id", assignment.Driver.ID.String()),
		zap.String("vehicle_type", assignment.Booking.VehicleType))

	uc.notifyMatched(ctx, assignment)

	return &models.MatchResult{
		Success: true,
		Driver:  assignment.Driver,
		Message: "driver assigned",
	}, nil
}

func (uc *MatchUC) notifyMatched(ctx context.Context, assignment *matching.Assignment) {
	event := models.NotificationEvent{
		Type:      models.NotifyBookingMatched,
		Phone:     assignment.Booking.CustomerPhone,
		BookingID: &assignment.Booking.ID,
		Pickup:    assignment.Booking.PickupLocation,
		Dropoff:   assignment.Booking.DropoffLocation,
		DriverID:  &assignment.Driver.ID,
	}
	if _, err := uc.notifyGW.Dispatch(ctx, event); err != nil {
		uc.logger.Warn("match notification failed",
			zap.String("booking_id", assignment.Booking.ID.String()),
			zap.Error(err))
	}
}

// SweepStaleMatches releases bookings whose driver never confirmed within the
// timeout and tries to match each one again. Failures are isolated per
// booking so one bad row cannot stall the sweep.
func (uc *MatchUC) SweepStaleMatches(ctx context.Context) (*models.SweepReport, error) {
	cutoff := time.Now().Add(-time.Duration(uc.cfg.MatchTimeoutMinutes) * time.Minute)
	stale, err := uc.matchRepo.FindStaleMatches(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep stale matches: %w", err)
	}

	report := &models.SweepReport{Total: len(stale)}
	for _, booking := range stale {
		detail := models.SweepDetail{BookingID: booking.ID}

		if booking.DriverID == nil {
			detail.Outcome = models.SweepFailed
			report.Details = append(report.Details, detail)
			continue
		}

		released, err := uc.matchRepo.ReleaseBooking(ctx, booking.ID, *booking.DriverID)
		if err != nil {
			uc.logger.Error("failed to release stale booking",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(err))
			detail.Outcome = models.SweepFailed
			report.Details = append(report.Details, detail)
			continue
		}
		if !released {
			// Driver confirmed between the scan and the release.
			detail.Outcome = models.SweepConfirmed
			report.Details = append(report.Details, detail)
			continue
		}

		result, err := uc.MatchDriver(ctx, booking.ID)
		switch {
		case err != nil:
			uc.logger.Error("failed to re-match booking",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(err))
			detail.Outcome = models.SweepFailed
		case result.Success:
			detail.Outcome = models.SweepRematched
			report.Reassigned++
		default:
			detail.Outcome = models.SweepNoDriver
		}
		report.Details = append(report.Details, detail)
	}

	uc.logger.Info("reassignment sweep done",
		zap.Int("total", report.Total),
		zap.Int("reassigned", report.Reassigned))
	return report, nil
}
