package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/middleware"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/booking"
)

// BookingHandler exposes the booking lifecycle endpoints
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates the booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes registers the public, driver and admin booking endpoints
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig, apiKey string) {
	e.POST("/bookings", h.Create)
	e.GET("/bookings/:id", h.Get)

	driver := e.Group("/driver/bookings", middleware.DriverAuthMiddleware(jwtConfig))
	driver.GET("", h.ListMine)
	driver.POST("/:id/confirm", h.Confirm)
	driver.POST("/:id/reject", h.Reject)
	driver.POST("/:id/complete", h.Complete)

	admin := e.Group("/internal/bookings", middleware.AdminAPIKeyMiddleware(apiKey))
	admin.GET("", h.ListRecent)
	admin.POST("/:id/cancel", h.Cancel)
}

// Create submits a booking and reports the immediate match attempt
func (h *BookingHandler) Create(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.bookingUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "booking received, searching for a driver"
	if resp.Match != nil && resp.Match.Success {
		message = "booking received, driver assigned"
	}
	return utils.SuccessResponse(c, http.StatusCreated, message, resp)
}

// Get returns one booking
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", b)
}

// ListMine returns the authenticated driver's bookings
func (h *BookingHandler) ListMine(c echo.Context) error {
	driverID, ok := middleware.DriverID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.bookingUC.ListDriverBookings(c.Request().Context(), driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// Confirm accepts a matched booking
func (h *BookingHandler) Confirm(c echo.Context) error {
	return h.driverAction(c, h.bookingUC.ConfirmBooking, "booking confirmed")
}

// Complete closes a confirmed trip
func (h *BookingHandler) Complete(c echo.Context) error {
	return h.driverAction(c, h.bookingUC.CompleteBooking, "booking completed")
}

// Reject declines a matched booking and reports the re-match attempt
func (h *BookingHandler) Reject(c echo.Context) error {
	driverID, ok := middleware.DriverID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	match, err := h.bookingUC.RejectBooking(c.Request().Context(), id, driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "booking rejected", match)
}

// ListRecent returns the latest bookings for the admin dashboard
func (h *BookingHandler) ListRecent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bookings, err := h.bookingUC.ListRecentBookings(c.Request().Context(), limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// Cancel cancels a booking from any non-terminal state
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	b, err := h.bookingUC.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "booking cancelled", b)
}

type driverActionFunc func(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)

func (h *BookingHandler) driverAction(c echo.Context, action driverActionFunc, message string) error {
	driverID, ok := middleware.DriverID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	b, err := action(c.Request().Context(), id, driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, b)
}
