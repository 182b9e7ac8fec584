package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/middleware"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/report"
)

// ReportHandler exposes the admin daily report endpoint
type ReportHandler struct {
	reportUC report.ReportUC
}

// NewReportHandler creates the report HTTP handler
func NewReportHandler(reportUC report.ReportUC) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// RegisterRoutes registers the report endpoint behind the admin key
func (h *ReportHandler) RegisterRoutes(e *echo.Echo, apiKey string) {
	internal := e.Group("/internal", middleware.AdminAPIKeyMiddleware(apiKey))
	internal.GET("/reports/daily", h.Daily)
}

// Daily returns the report for yesterday, or for ?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c echo.Context) error {
	day := time.Now().AddDate(0, 0, -1)
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid date, want YYYY-MM-DD")
		}
		day = parsed
	}

	result, err := h.reportUC.DailyReport(c.Request().Context(), day)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
