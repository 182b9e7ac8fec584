package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/middleware"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/driver"
)

// DriverHandler exposes driver onboarding, auth and account endpoints
type DriverHandler struct {
	driverUC driver.DriverUC
}

// NewDriverHandler creates the driver HTTP handler
func NewDriverHandler(driverUC driver.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// RegisterRoutes registers the public, driver and admin endpoints
func (h *DriverHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig, apiKey string) {
	e.POST("/drivers/register", h.Register)
	e.POST("/drivers/otp/send", h.SendOTP)
	e.POST("/drivers/otp/verify", h.VerifyOTP)

	me := e.Group("/driver", middleware.DriverAuthMiddleware(jwtConfig))
	me.GET("/me", h.Me)
	me.PUT("/availability", h.SetAvailability)

	admin := e.Group("/internal/drivers", middleware.AdminAPIKeyMiddleware(apiKey))
	admin.GET("", h.List)
	admin.POST("/:id/approve", h.Approve)
	admin.POST("/:id/suspend", h.Suspend)
}

// Register submits a driver application
func (h *DriverHandler) Register(c echo.Context) error {
	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	d, err := h.driverUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "registration received, pending approval", d)
}

// SendOTP issues a one-time login code over SMS
func (h *DriverHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.driverUC.SendOTP(c.Request().Context(), req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "otp sent", nil)
}

// VerifyOTP exchanges a code for a driver token
func (h *DriverHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	auth, err := h.driverUC.VerifyOTP(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", auth)
}

// Me returns the authenticated driver's profile
func (h *DriverHandler) Me(c echo.Context) error {
	driverID, ok := middleware.DriverID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	d, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

// SetAvailability flips the authenticated driver's online state
func (h *DriverHandler) SetAvailability(c echo.Context) error {
	driverID, ok := middleware.DriverID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.driverUC.SetAvailability(c.Request().Context(), driverID, req.IsAvailable); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "availability updated", nil)
}

// List returns drivers for the admin dashboard
func (h *DriverHandler) List(c echo.Context) error {
	drivers, err := h.driverUC.ListDrivers(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", drivers)
}

// Approve activates a pending driver
func (h *DriverHandler) Approve(c echo.Context) error {
	return h.adminStatus(c, h.driverUC.Approve, "driver approved")
}

// Suspend blocks a driver from taking bookings
func (h *DriverHandler) Suspend(c echo.Context) error {
	return h.adminStatus(c, h.driverUC.Suspend, "driver suspended")
}

func (h *DriverHandler) adminStatus(
	c echo.Context,
	action func(ctx context.Context, id uuid.UUID) (*models.Driver, error),
	message string,
) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid driver id")
	}

	d, err := action(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, d)
}
