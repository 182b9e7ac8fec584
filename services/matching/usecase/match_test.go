package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/matching"
	"github.com/NicholasChen868/xedulichvogia/services/matching/mocks"
)

func newTestMatchUC(t *testing.T) (*MatchUC, *mocks.MockMatchRepo, *mocks.MockNotifyGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockNotify := mocks.NewMockNotifyGW(ctrl)
	cfg := models.BookingConfig{MatchTimeoutMinutes: 30}
	return NewMatchUC(cfg, mockRepo, mockNotify, logger.NewNop()), mockRepo, mockNotify
}

func TestMatchDriver_Success(t *testing.T) {
	uc, mockRepo, mockNotify := newTestMatchUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	assignment := &matching.Assignment{
		Booking: models.Booking{
			ID:             bookingID,
			PickupLocation: "Ho Chi Minh",
			DropoffLocation: "Vung Tau",
			CustomerPhone:  "0901234567",
			VehicleType:    "sedan-4",
			Status:         models.BookingStatusMatched,
		},
		Driver: &models.MatchedDriver{
			ID:           driverID,
			FullName:     "Nguyen Van A",
			Phone:        "0912345678",
			LicensePlate: "51A-123.45",
		},
	}

	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(assignment, nil)
	mockNotify.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error) {
			assert.Equal(t, models.NotifyBookingMatched, event.Type)
			assert.Equal(t, "0901234567", event.Phone)
			assert.Equal(t, driverID, *event.DriverID)
			return &models.NotificationResult{Type: event.Type, Sent: true}, nil
		})

	result, err := uc.MatchDriver(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, driverID, result.Driver.ID)
}

func TestMatchDriver_NoDriverAvailable(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking: models.Booking{ID: bookingID, Status: models.BookingStatusPending, VehicleType: "bus-45"},
	}, nil)

	result, err := uc.MatchDriver(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Driver)
	assert.Contains(t, result.Message, "no driver available")
}

func TestMatchDriver_AlreadyAssignedIsIdempotent(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking:         models.Booking{ID: bookingID, Status: models.BookingStatusMatched, DriverID: &driverID},
		Driver:          &models.MatchedDriver{ID: driverID},
		AlreadyAssigned: true,
	}, nil)

	result, err := uc.MatchDriver(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, driverID, result.Driver.ID)
	assert.Contains(t, result.Message, "already has a driver")
}

func TestMatchDriver_CancelledBooking(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking: models.Booking{ID: bookingID, Status: models.BookingStatusCancelled},
	}, nil)

	result, err := uc.MatchDriver(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "cancelled")
}

func TestMatchDriver_NotificationFailureDoesNotBlock(t *testing.T) {
	uc, mockRepo, mockNotify := newTestMatchUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking: models.Booking{ID: bookingID, Status: models.BookingStatusMatched, CustomerPhone: "0901234567"},
		Driver:  &models.MatchedDriver{ID: driverID},
	}, nil)
	mockNotify.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("sms gateway down"))

	result, err := uc.MatchDriver(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestMatchDriver_RepoError(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(nil, errors.New("deadlock detected"))

	_, err := uc.MatchDriver(context.Background(), bookingID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to match booking")
}

func TestSweepStaleMatches_Rematch(t *testing.T) {
	uc, mockRepo, mockNotify := newTestMatchUC(t)

	bookingID := uuid.New()
	oldDriverID := uuid.New()
	newDriverID := uuid.New()
	matchedAt := time.Now().Add(-45 * time.Minute)

	mockRepo.EXPECT().
		FindStaleMatches(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
			assert.WithinDuration(t, time.Now().Add(-30*time.Minute), cutoff, 5*time.Second)
			return []models.Booking{{
				ID:        bookingID,
				Status:    models.BookingStatusMatched,
				DriverID:  &oldDriverID,
				MatchedAt: &matchedAt,
			}}, nil
		})
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), bookingID, oldDriverID).Return(true, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking: models.Booking{ID: bookingID, Status: models.BookingStatusMatched, CustomerPhone: "0901234567"},
		Driver:  &models.MatchedDriver{ID: newDriverID},
	}, nil)
	mockNotify.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(&models.NotificationResult{Sent: true}, nil)

	report, err := uc.SweepStaleMatches(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Reassigned)
	assert.Len(t, report.Details, 1)
	assert.Equal(t, models.SweepRematched, report.Details[0].Outcome)
}

func TestSweepStaleMatches_NoReplacementDriver(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().FindStaleMatches(gomock.Any(), gomock.Any()).Return([]models.Booking{
		{ID: bookingID, Status: models.BookingStatusMatched, DriverID: &driverID},
	}, nil)
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), bookingID, driverID).Return(true, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), bookingID).Return(&matching.Assignment{
		Booking: models.Booking{ID: bookingID, Status: models.BookingStatusPending},
	}, nil)

	report, err := uc.SweepStaleMatches(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Reassigned)
	assert.Equal(t, models.SweepNoDriver, report.Details[0].Outcome)
}

func TestSweepStaleMatches_RacedConfirmIsReported(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().FindStaleMatches(gomock.Any(), gomock.Any()).Return([]models.Booking{
		{ID: bookingID, Status: models.BookingStatusMatched, DriverID: &driverID},
	}, nil)
	// Driver confirmed between the scan and the release: no rematch, but the
	// booking still gets its line in the report.
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), bookingID, driverID).Return(false, nil)

	report, err := uc.SweepStaleMatches(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 0, report.Reassigned)
	require.Len(t, report.Details, 1)
	assert.Equal(t, bookingID, report.Details[0].BookingID)
	assert.Equal(t, models.SweepConfirmed, report.Details[0].Outcome)
}

func TestSweepStaleMatches_ReleaseFailureIsIsolated(t *testing.T) {
	uc, mockRepo, mockNotify := newTestMatchUC(t)

	badID := uuid.New()
	goodID := uuid.New()
	driverID := uuid.New()
	otherDriverID := uuid.New()

	mockRepo.EXPECT().FindStaleMatches(gomock.Any(), gomock.Any()).Return([]models.Booking{
		{ID: badID, Status: models.BookingStatusMatched, DriverID: &driverID},
		{ID: goodID, Status: models.BookingStatusMatched, DriverID: &otherDriverID},
	}, nil)
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), badID, driverID).Return(false, errors.New("io timeout"))
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), goodID, otherDriverID).Return(true, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), goodID).Return(&matching.Assignment{
		Booking: models.Booking{ID: goodID, Status: models.BookingStatusMatched, CustomerPhone: "0901234567"},
		Driver:  &models.MatchedDriver{ID: uuid.New()},
	}, nil)
	mockNotify.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(&models.NotificationResult{Sent: true}, nil)

	report, err := uc.SweepStaleMatches(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Reassigned)
	assert.Len(t, report.Details, 2)
	assert.Equal(t, models.SweepFailed, report.Details[0].Outcome)
	assert.Equal(t, models.SweepRematched, report.Details[1].Outcome)
}

func TestSweepStaleMatches_ScanError(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t)

	mockRepo.EXPECT().FindStaleMatches(gomock.Any(), gomock.Any()).Return(nil, errors.New("relation does not exist"))

	_, err := uc.SweepStaleMatches(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to sweep")
}
