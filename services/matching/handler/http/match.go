package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/middleware"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/matching"
)

// MatchHandler exposes the internal matching and sweep endpoints
type MatchHandler struct {
	matchUC matching.MatchUC
}

// NewMatchHandler creates the matching HTTP handler
func NewMatchHandler(matchUC matching.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// RegisterRoutes registers the matching endpoints behind the admin key
func (h *MatchHandler) RegisterRoutes(e *echo.Echo, apiKey string) {
	internal := e.Group("/internal", middleware.AdminAPIKeyMiddleware(apiKey))
	internal.POST("/reassign", h.Reassign)
	internal.POST("/match/:booking_id", h.Match)
}

// Reassign runs one reassignment sweep over stale matches
func (h *MatchHandler) Reassign(c echo.Context) error {
	report, err := h.matchUC.SweepStaleMatches(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "sweep completed", report)
}

// Match triggers a match attempt for one booking
func (h *MatchHandler) Match(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	result, err := h.matchUC.MatchDriver(c.Request().Context(), bookingID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
