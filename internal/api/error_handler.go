package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

// errorEnvelope matches the payload shape the storefront and dashboard expect
// on every non-2xx response.
type errorEnvelope struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes and messages.
	switch {
	case errors.Is(err, domain.ErrInvalidOrderData):
		return http.StatusBadRequest, "Invalid order data: Missing billing details or products."
	case errors.Is(err, domain.ErrMissingStatus):
		return http.StatusBadRequest, "New status is required."
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid order status."
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found."
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Name, Email, and password are required."
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters."
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error."
}
