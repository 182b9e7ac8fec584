package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/payment"
)

// PaymentHandler exposes the deposit payment endpoints. Each provider gets
// its own callback route: the route fixes the provider, and each provider's
// expected acknowledgement shape is honoured.
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates the payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// RegisterRoutes registers the payment endpoints
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments", h.Create)
	e.POST("/payments/callback/momo", h.MomoCallback)
	e.GET("/payments/callback/vnpay", h.VNPayCallback)
	e.POST("/payments/callback/zalopay", h.ZaloPayCallback)
}

// Create opens a hosted checkout for a booking deposit
func (h *PaymentHandler) Create(c echo.Context) error {
	var req models.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.paymentUC.CreatePayment(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// MomoCallback settles a Momo IPN. Momo expects a bare 204 acknowledgement
// for every processed notification and retries anything else, so even a bad
// signature is answered with a bodyless status code rather than the JSON
// envelope.
func (h *PaymentHandler) MomoCallback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if _, err := h.paymentUC.HandleMomoCallback(c.Request().Context(), body); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSignature):
			return c.NoContent(http.StatusUnauthorized)
		case errors.Is(err, models.ErrNotFound):
			return c.NoContent(http.StatusNotFound)
		case errors.Is(err, models.ErrValidation):
			return c.NoContent(http.StatusBadRequest)
		default:
			return c.NoContent(http.StatusInternalServerError)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

type vnpayAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// VNPayCallback settles a VNPay IPN. VNPay retries until it receives its own
// response-code envelope, so every outcome is reported with HTTP 200.
func (h *PaymentHandler) VNPayCallback(c echo.Context) error {
	applied, err := h.paymentUC.HandleVNPayCallback(c.Request().Context(), c.QueryParams())
	switch {
	case errors.Is(err, models.ErrInvalidSignature):
		return c.JSON(http.StatusOK, vnpayAck{RspCode: "97", Message: "Invalid Checksum"})
	case errors.Is(err, models.ErrNotFound):
		return c.JSON(http.StatusOK, vnpayAck{RspCode: "01", Message: "Order Not Found"})
	case err != nil:
		return c.JSON(http.StatusOK, vnpayAck{RspCode: "99", Message: "Unknown Error"})
	case !applied:
		return c.JSON(http.StatusOK, vnpayAck{RspCode: "02", Message: "Order Already Confirmed"})
	default:
		return c.JSON(http.StatusOK, vnpayAck{RspCode: "00", Message: "Confirm Success"})
	}
}

type zaloPayAck struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
}

// ZaloPayCallback settles a ZaloPay callback
func (h *PaymentHandler) ZaloPayCallback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusOK, zaloPayAck{ReturnCode: -1, ReturnMessage: "invalid body"})
	}

	if _, err := h.paymentUC.HandleZaloPayCallback(c.Request().Context(), body); err != nil {
		if errors.Is(err, models.ErrInvalidSignature) {
			return c.JSON(http.StatusOK, zaloPayAck{ReturnCode: -1, ReturnMessage: "mac not equal"})
		}
		return c.JSON(http.StatusOK, zaloPayAck{ReturnCode: 0, ReturnMessage: err.Error()})
	}
	return c.JSON(http.StatusOK, zaloPayAck{ReturnCode: 1, ReturnMessage: "success"})
}
