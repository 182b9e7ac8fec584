package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/middleware"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	"github.com/NicholasChen868/xedulichvogia/services/notification"
)

// NotificationHandler exposes the internal notification dispatch endpoint
type NotificationHandler struct {
	notifyUC notification.NotifyUC
}

// NewNotificationHandler creates the notification HTTP handler
func NewNotificationHandler(notifyUC notification.NotifyUC) *NotificationHandler {
	return &NotificationHandler{notifyUC: notifyUC}
}

// RegisterRoutes registers the notification endpoint behind the admin key
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo, apiKey string) {
	internal := e.Group("/internal", middleware.AdminAPIKeyMiddleware(apiKey))
	internal.POST("/notifications", h.Dispatch)
}

// Dispatch sends one lifecycle notification
func (h *NotificationHandler) Dispatch(c echo.Context) error {
	var event models.NotificationEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := c.Validate(&event); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.notifyUC.Dispatch(c.Request().Context(), event)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
