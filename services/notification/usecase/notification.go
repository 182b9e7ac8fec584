package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/notification"
)

// NotifyUC builds and dispatches SMS notifications for lifecycle events.
// Dispatch never fails the caller on channel problems: an undeliverable
// message is logged and reported as sent=false.
type NotifyUC struct {
	smsGW    notification.SMSGW
	driverGW notification.DriverGW
	logger   *logger.Logger
}

// NewNotifyUC creates the notification usecase
func NewNotifyUC(smsGW notification.SMSGW, driverGW notification.DriverGW, logger *logger.Logger) *NotifyUC {
	return &NotifyUC{smsGW: smsGW, driverGW: driverGW, logger: logger}
}

// Dispatch resolves driver details, renders the message and sends it
func (uc *NotifyUC) Dispatch(ctx context.Context, event models.NotificationEvent) (*models.NotificationResult, error) {
	if event.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", models.ErrValidation)
	}

	var driver *models.Driver
	if event.DriverID != nil {
		d, err := uc.driverGW.GetDriver(ctx, *event.DriverID)
		if err != nil {
			uc.logger.Warn("driver lookup for notification failed",
				zap.String("driver_id", event.DriverID.String()),
				zap.Error(err))
		} else {
			driver = d
		}
	}

	message := buildMessage(event, driver)
	result := &models.NotificationResult{Type: event.Type, Sent: true}

	if err := uc.smsGW.SendSMS(ctx, event.Phone, message); err != nil {
		uc.logger.Warn("sms delivery failed, message logged only",
			zap.String("type", string(event.Type)),
			zap.String("phone", utils.MaskPhone(event.Phone)),
			zap.Error(err))
		result.Sent = false
		return result, nil
	}

	uc.logger.Info("notification sent",
		zap.String("type", string(event.Type)),
		zap.String("phone", utils.MaskPhone(event.Phone)))
	return result, nil
}

// buildMessage renders the SMS body. Brandname SMS is unaccented by
// convention, so the templates use folded Vietnamese.
func buildMessage(event models.NotificationEvent, driver *models.Driver) string {
	driverName, driverPhone, licensePlate := "Dang cap nhat", "", ""
	if driver != nil {
		driverName = driver.FullName
		driverPhone = driver.Phone
		licensePlate = driver.LicensePlate
	}

	switch event.Type {
	case models.NotifyBookingMatched:
		return fmt.Sprintf(
			"[TravelCar] Don dat xe cua ban da duoc nhan! Tuyen: %s -> %s. Tai xe: %s, Bien so: %s. SDT tai xe: %s. Cam on ban da su dung TravelCar!",
			event.Pickup, event.Dropoff, driverName, licensePlate, driverPhone)
	case models.NotifyBookingConfirmed:
		return fmt.Sprintf(
			"[TravelCar] Tai xe da xac nhan chuyen di cua ban. Tuyen: %s -> %s. Lien he: %s. Chuc ban co chuyen di vui ve!",
			event.Pickup, event.Dropoff, driverPhone)
	case models.NotifyBookingCompleted:
		return fmt.Sprintf(
			"[TravelCar] Chuyen di %s -> %s da hoan thanh. Cam on ban! Hay danh gia tai xe tai travelcar.vn",
			event.Pickup, event.Dropoff)
	case models.NotifyDriverApproved:
		return "[TravelCar] Chuc mung! Tai khoan tai xe cua ban da duoc duyet. Truy cap travelcar.vn/driver-dashboard.html de bat dau nhan cuoc."
	default:
		return "[TravelCar] Ban co thong bao moi. Truy cap travelcar.vn de xem chi tiet."
	}
}
