package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/NicholasChen868/xedulichvogia/internal/pkg/jwt"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
)

// DriverContextKey is the echo context key carrying the authenticated driver ID
const DriverContextKey = "driver_id"

// DriverAuthMiddleware validates the driver JWT and stores the driver ID in context
func DriverAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			driverIDStr, ok := claims["driver_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing driver_id claim")
			}

			driverID, err := uuid.Parse(fmt.Sprintf("%v", driverIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: driver_id is not a valid UUID")
			}

			c.Set(DriverContextKey, driverID)
			return next(c)
		}
	}
}

// DriverID extracts the authenticated driver ID from the echo context
func DriverID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(DriverContextKey).(uuid.UUID)
	return id, ok
}
