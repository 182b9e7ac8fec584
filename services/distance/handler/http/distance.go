package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/distance"
)

// DistanceHandler exposes the route distance endpoint
type DistanceHandler struct {
	distanceUC distance.DistanceUC
}

// NewDistanceHandler creates the distance HTTP handler
func NewDistanceHandler(distanceUC distance.DistanceUC) *DistanceHandler {
	return &DistanceHandler{distanceUC: distanceUC}
}

// RegisterRoutes registers the distance endpoint
func (h *DistanceHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/distance", h.Lookup)
}

// Lookup resolves the road distance between two places
func (h *DistanceHandler) Lookup(c echo.Context) error {
	var req models.DistanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.distanceUC.Lookup(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
