package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/utils"
)

// APIKeyHeader carries the admin key for internal endpoints
const APIKeyHeader = "X-API-Key"

// AdminAPIKeyMiddleware guards internal endpoints (sweeps, reports, driver
// approval) with a shared API key.
func AdminAPIKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "Admin API key is not configured")
			}

			provided := c.Request().Header.Get(APIKeyHeader)
			if provided == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
