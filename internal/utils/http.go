package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Error:   errorMessage,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps the domain error taxonomy onto HTTP status codes
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidOrExpired):
		return ErrorResponseHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrRateLimited):
		return ErrorResponseHandler(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return ErrorResponseHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrInvalidSignature):
		return ErrorResponseHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotOwner):
		return ErrorResponseHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrProviderUnavailable):
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		return InternalServerErrorResponse(c, "Internal server error")
	}
}
