package usecase

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
	"github.com/NicholasChen868/xedulichvogia/services/payment/mocks"
)

type paymentFixture struct {
	uc      *PaymentUC
	repo    *mocks.MockPaymentRepo
	booking *mocks.MockBookingGW
	momo    *mocks.MockMomoGW
	vnpay   *mocks.MockVNPayGW
	zalopay *mocks.MockZaloPayGW
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &paymentFixture{
		repo:    mocks.NewMockPaymentRepo(ctrl),
		booking: mocks.NewMockBookingGW(ctrl),
		momo:    mocks.NewMockMomoGW(ctrl),
		vnpay:   mocks.NewMockVNPayGW(ctrl),
		zalopay: mocks.NewMockZaloPayGW(ctrl),
	}
	f.uc = NewPaymentUC(f.repo, f.booking, f.momo, f.vnpay, f.zalopay, "https://travelcar.vn/payment/return", logger.NewNop())
	return f
}

func fareBooking(id uuid.UUID, fare int64) *models.Booking {
	return &models.Booking{
		ID:              id,
		PickupLocation:  "Ho Chi Minh",
		DropoffLocation: "Da Lat",
		CustomerPhone:   "84901234567",
		EstimatedFare:   &fare,
	}
}

func TestCreatePayment_MomoDeposit(t *testing.T) {
	f := newPaymentFixture(t)

	bookingID := uuid.New()
	f.booking.EXPECT().GetBooking(gomock.Any(), bookingID).Return(fareBooking(bookingID, 3510000), nil)
	f.momo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, order payment.Order) (string, error) {
			assert.Equal(t, int64(351000), order.Amount) // 10% of 3,510,000
			assert.True(t, strings.HasPrefix(order.OrderID, "TC"))
			assert.True(t, strings.HasSuffix(order.OrderID, "_"+bookingID.String()[:8]))
			assert.Equal(t, "https://travelcar.vn/payment/return", order.ReturnURL)
			return "https://test.momo.vn/pay/abc", nil
		})
	f.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Payment) error {
			assert.Equal(t, models.ProviderMomo, p.Provider)
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.Equal(t, int64(3510000), p.Amount)
			assert.Equal(t, int64(351000), p.DepositAmount)
			return nil
		})

	resp, err := f.uc.CreatePayment(context.Background(), models.CreatePaymentRequest{
		BookingID: bookingID.String(),
		Provider:  "momo",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://test.momo.vn/pay/abc", resp.PayURL)
	assert.Equal(t, int64(351000), resp.DepositAmount)
	assert.Equal(t, models.ProviderMomo, resp.Provider)
}

func TestCreatePayment_DepositRounding(t *testing.T) {
	f := newPaymentFixture(t)

	bookingID := uuid.New()
	// 10% of 1,148,005 is 114,800.5; rounds to 114,801
	f.booking.EXPECT().GetBooking(gomock.Any(), bookingID).Return(fareBooking(bookingID, 1148005), nil)
	f.vnpay.EXPECT().
		BuildPayURL(gomock.Any()).
		DoAndReturn(func(order payment.Order) (string, error) {
			assert.Equal(t, int64(114801), order.Amount)
			return "https://sandbox.vnpayment.vn/pay?x=1", nil
		})
	f.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CreatePayment(context.Background(), models.CreatePaymentRequest{
		BookingID: bookingID.String(),
		Provider:  "vnpay",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(114801), resp.DepositAmount)
}

func TestCreatePayment_NoFareEstimate(t *testing.T) {
	f := newPaymentFixture(t)

	bookingID := uuid.New()
	f.booking.EXPECT().GetBooking(gomock.Any(), bookingID).Return(&models.Booking{ID: bookingID}, nil)

	_, err := f.uc.CreatePayment(context.Background(), models.CreatePaymentRequest{
		BookingID: bookingID.String(),
		Provider:  "momo",
	})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "no fare estimate")
}

func TestCreatePayment_UnsupportedProvider(t *testing.T) {
	f := newPaymentFixture(t)

	bookingID := uuid.New()
	f.booking.EXPECT().GetBooking(gomock.Any(), bookingID).Return(fareBooking(bookingID, 1000000), nil)

	_, err := f.uc.CreatePayment(context.Background(), models.CreatePaymentRequest{
		BookingID: bookingID.String(),
		Provider:  "paypal",
	})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreatePayment_InvalidBookingID(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.uc.CreatePayment(context.Background(), models.CreatePaymentRequest{
		BookingID: "not-a-uuid",
		Provider:  "momo",
	})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestHandleMomoCallback_Settles(t *testing.T) {
	f := newPaymentFixture(t)

	body := []byte(`{"orderId":"TC123_abcd1234","resultCode":0}`)
	f.momo.EXPECT().VerifyCallback(body).Return(&models.CallbackResult{
		OrderID: "TC123_abcd1234",
		Success: true,
		RawBody: body,
	}, nil)
	f.repo.EXPECT().GetByProviderOrderID(gomock.Any(), "TC123_abcd1234").Return(&models.Payment{
		Provider:        models.ProviderMomo,
		ProviderOrderID: "TC123_abcd1234",
		Status:          models.PaymentStatusPending,
	}, nil)
	f.repo.EXPECT().
		ApplyCallback(gomock.Any(), "TC123_abcd1234", true, body).
		Return(true, &models.Payment{Status: models.PaymentStatusPaid}, nil)

	applied, err := f.uc.HandleMomoCallback(context.Background(), body)

	assert.NoError(t, err)
	assert.True(t, applied)
}

func TestHandleMomoCallback_InvalidSignature(t *testing.T) {
	f := newPaymentFixture(t)

	body := []byte(`{"orderId":"TC123_abcd1234","signature":"forged"}`)
	f.momo.EXPECT().VerifyCallback(body).Return(nil, models.ErrInvalidSignature)

	applied, err := f.uc.HandleMomoCallback(context.Background(), body)

	assert.ErrorIs(t, err, models.ErrInvalidSignature)
	assert.False(t, applied)
}

func TestHandleVNPayCallback_ReplayIsNotReapplied(t *testing.T) {
	f := newPaymentFixture(t)

	params := url.Values{"vnp_TxnRef": {"TC123_abcd1234"}}
	f.vnpay.EXPECT().VerifyCallback(params).Return(&models.CallbackResult{
		OrderID: "TC123_abcd1234",
		Success: true,
	}, nil)
	f.repo.EXPECT().GetByProviderOrderID(gomock.Any(), "TC123_abcd1234").Return(&models.Payment{
		Provider:        models.ProviderVNPay,
		ProviderOrderID: "TC123_abcd1234",
		Status:          models.PaymentStatusPaid,
	}, nil)
	// The row was already settled; the conditional update touches nothing.
	f.repo.EXPECT().
		ApplyCallback(gomock.Any(), "TC123_abcd1234", true, gomock.Any()).
		Return(false, &models.Payment{Status: models.PaymentStatusPaid}, nil)

	applied, err := f.uc.HandleVNPayCallback(context.Background(), params)

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestHandleZaloPayCallback_ProviderMismatch(t *testing.T) {
	f := newPaymentFixture(t)

	body := []byte(`{"data":"...","mac":"..."}`)
	f.zalopay.EXPECT().VerifyCallback(body).Return(&models.CallbackResult{
		OrderID: "TC123_abcd1234",
		Success: true,
	}, nil)
	// The order was opened with Momo; a ZaloPay-signed callback must not settle it.
	f.repo.EXPECT().GetByProviderOrderID(gomock.Any(), "TC123_abcd1234").Return(&models.Payment{
		Provider:        models.ProviderMomo,
		ProviderOrderID: "TC123_abcd1234",
		Status:          models.PaymentStatusPending,
	}, nil)

	applied, err := f.uc.HandleZaloPayCallback(context.Background(), body)

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.False(t, applied)
}

func TestHandleVNPayCallback_UnknownOrder(t *testing.T) {
	f := newPaymentFixture(t)

	params := url.Values{"vnp_TxnRef": {"TC999_ffffffff"}}
	f.vnpay.EXPECT().VerifyCallback(params).Return(&models.CallbackResult{
		OrderID: "TC999_ffffffff",
		Success: true,
	}, nil)
	f.repo.EXPECT().GetByProviderOrderID(gomock.Any(), "TC999_ffffffff").Return(nil, models.ErrNotFound)

	applied, err := f.uc.HandleVNPayCallback(context.Background(), params)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, applied)
}

func TestHandleMomoCallback_FailedPayment(t *testing.T) {
	f := newPaymentFixture(t)

	body := []byte(`{"orderId":"TC123_abcd1234","resultCode":1006}`)
	f.momo.EXPECT().VerifyCallback(body).Return(&models.CallbackResult{
		OrderID: "TC123_abcd1234",
		Success: false,
		RawBody: body,
	}, nil)
	f.repo.EXPECT().GetByProviderOrderID(gomock.Any(), "TC123_abcd1234").Return(&models.Payment{
		Provider:        models.ProviderMomo,
		ProviderOrderID: "TC123_abcd1234",
		Status:          models.PaymentStatusPending,
	}, nil)
	f.repo.EXPECT().
		ApplyCallback(gomock.Any(), "TC123_abcd1234", false, body).
		Return(true, &models.Payment{Status: models.PaymentStatusFailed}, nil)

	applied, err := f.uc.HandleMomoCallback(context.Background(), body)

	assert.NoError(t, err)
	assert.True(t, applied)
}
