package errors

import (
	"net/http"

	"github.com/holyfit/holyfit-api/pkg/domain"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
)

var log = logger.Default()

// SetLogger replaces the logger used to record the details hidden from clients
func SetLogger(l logger.Logger) {
	if l != nil {
		log = l
	}
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Warn("validation error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Error("internal error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	log.Debug("unauthorized", "path", c.Request().URL.Path, "reason", reason)

	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ServiceUnavailableError reports a feature that cannot run in this deployment
func ServiceUnavailableError(c echo.Context, err error) error {
	log.Warn("service unavailable", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "service_unavailable",
		Message: "This feature is not available right now.",
	})
}

// FromDomain maps a service error onto the matching response
func FromDomain(c echo.Context, err error) error {
	switch {
	case domain.IsValidation(err), domain.IsBadRequest(err):
		return ValidationError(c, err)
	case domain.IsNotFound(err):
		return NotFoundError(c, "")
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c, err.Error())
	case domain.IsNotConfigured(err):
		return ServiceUnavailableError(c, err)
	default:
		return InternalError(c, err)
	}
}
