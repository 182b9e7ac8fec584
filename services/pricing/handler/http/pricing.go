package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/pricing"
)

// PricingHandler exposes the fare calculator
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates the pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{pricingUC: pricingUC}
}

// RegisterRoutes registers the pricing endpoints
func (h *PricingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/pricing/quote", h.Quote)
	e.POST("/pricing/estimate", h.Estimate)
}

// Quote returns the plain tiered fare for a distance and vehicle class
func (h *PricingHandler) Quote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	fare, err := h.pricingUC.Quote(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", fare)
}

// Estimate returns the dynamic fare with time and holiday adjustments
func (h *PricingHandler) Estimate(c echo.Context) error {
	var req models.EstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	estimate, err := h.pricingUC.Estimate(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", estimate)
}
