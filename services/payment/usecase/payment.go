package usecase

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
)

// depositPercent is the share of the estimated fare collected up front
const depositPercent = 0.10

// PaymentUC implements the deposit payment flow
type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	bookingGW   payment.BookingGW
	momoGW      payment.MomoGW
	vnpayGW     payment.VNPayGW
	zalopayGW   payment.ZaloPayGW
	returnURL   string
	logger      *logger.Logger
}

// NewPaymentUC creates the payment usecase
func NewPaymentUC(
	paymentRepo payment.PaymentRepo,
	bookingGW payment.BookingGW,
	momoGW payment.MomoGW,
	vnpayGW payment.VNPayGW,
	zalopayGW payment.ZaloPayGW,
	returnURL string,
	logger *logger.Logger,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		bookingGW:   bookingGW,
		momoGW:      momoGW,
		vnpayGW:     vnpayGW,
		zalopayGW:   zalopayGW,
		returnURL:   returnURL,
		logger:      logger,
	}
}

// CreatePayment opens a hosted checkout for the booking's 10% deposit
func (uc *PaymentUC) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (*models.CreatePaymentResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking_id", models.ErrValidation)
	}

	booking, err := uc.bookingGW.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.EstimatedFare == nil || *booking.EstimatedFare <= 0 {
		return nil, fmt.Errorf("%w: booking has no fare estimate yet", models.ErrValidation)
	}

	totalFare := *booking.EstimatedFare
	deposit := int64(math.Round(float64(totalFare) * depositPercent))
	orderID := fmt.Sprintf("TC%d_%s", time.Now().UnixMilli(), bookingID.String()[:8])

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = uc.returnURL
	}
	order := payment.Order{
		OrderID:     orderID,
		Amount:      deposit,
		Description: fmt.Sprintf("Dat coc TravelCar: %s -> %s", booking.PickupLocation, booking.DropoffLocation),
		ReturnURL:   returnURL,
	}

	provider := models.PaymentProvider(req.Provider)
	var payURL string
	switch provider {
	case models.ProviderMomo:
		payURL, err = uc.momoGW.CreatePayment(ctx, order)
	case models.ProviderVNPay:
		payURL, err = uc.vnpayGW.BuildPayURL(order)
	case models.ProviderZaloPay:
		payURL, err = uc.zalopayGW.CreatePayment(ctx, order)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", models.ErrValidation, req.Provider)
	}
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		ID:              uuid.New(),
		BookingID:       bookingID,
		Provider:        provider,
		ProviderOrderID: orderID,
		Status:          models.PaymentStatusPending,
		Amount:          totalFare,
		DepositAmount:   deposit,
		PayURL:          &payURL,
		CustomerPhone:   booking.CustomerPhone,
	}
	if err := uc.paymentRepo.CreatePayment(ctx, record); err != nil {
		return nil, err
	}

	uc.logger.Info("payment created",
		zap.String("booking_id", bookingID.String()),
		zap.String("provider", string(provider)),
		zap.String("order_id", orderID),
		zap.Int64("deposit", deposit))

	return &models.CreatePaymentResponse{
		PayURL:        payURL,
		DepositAmount: deposit,
		TotalFare:     totalFare,
		Provider:      provider,
		OrderID:       orderID,
	}, nil
}

// HandleMomoCallback verifies and settles a Momo IPN
func (uc *PaymentUC) HandleMomoCallback(ctx context.Context, body []byte) (bool, error) {
	result, err := uc.momoGW.VerifyCallback(body)
	if err != nil {
		return false, err
	}
	return uc.settle(ctx, models.ProviderMomo, result)
}

// HandleVNPayCallback verifies and settles a VNPay IPN
func (uc *PaymentUC) HandleVNPayCallback(ctx context.Context, params url.Values) (bool, error) {
	result, err := uc.vnpayGW.VerifyCallback(params)
	if err != nil {
		return false, err
	}
	return uc.settle(ctx, models.ProviderVNPay, result)
}

// HandleZaloPayCallback verifies and settles a ZaloPay callback
func (uc *PaymentUC) HandleZaloPayCallback(ctx context.Context, body []byte) (bool, error) {
	result, err := uc.zalopayGW.VerifyCallback(body)
	if err != nil {
		return false, err
	}
	return uc.settle(ctx, models.ProviderZaloPay, result)
}

func (uc *PaymentUC) settle(ctx context.Context, provider models.PaymentProvider, result *models.CallbackResult) (bool, error) {
	record, err := uc.paymentRepo.GetByProviderOrderID(ctx, result.OrderID)
	if err != nil {
		return false, err
	}
	if record.Provider != provider {
		// A callback signed by one provider must not settle another's order.
		return false, fmt.Errorf("%w: order %s belongs to %s", models.ErrValidation, result.OrderID, record.Provider)
	}

	applied, _, err := uc.paymentRepo.ApplyCallback(ctx, result.OrderID, result.Success, result.RawBody)
	if err != nil {
		return false, err
	}
	if !applied {
		uc.logger.Info("payment callback replayed",
			zap.String("provider", string(provider)),
			zap.String("order_id", result.OrderID))
		return false, nil
	}

	uc.logger.Info("payment settled",
		zap.String("provider", string(provider)),
		zap.String("order_id", result.OrderID),
		zap.Bool("paid", result.Success))
	return true, nil
}
