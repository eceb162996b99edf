package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors: the
// HTTP status, a message, and the request path that failed.
type errorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Path   string `json:"path"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the typed domain error taxonomy to deterministic HTTP statuses.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status", "error", "path"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Status: code, Error: msg, Path: c.Request().URL.Path})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// NotFound
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, err.Error()

	// Conflict. Duplicate username/email render as 409, matching the
	// typed-error convention rather than a blanket 400.
	case errors.Is(err, domain.ErrUsernameExists),
		errors.Is(err, domain.ErrDuplicateEmployee):
		return http.StatusConflict, err.Error()

	// Validation. An unknown role name in a create/update payload is a bad
	// request, not a missed resource lookup.
	case errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrMissingEmployeeFields),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrNilAccount),
		errors.Is(err, domain.ErrNilRole):
		return http.StatusBadRequest, err.Error()

	// Auth: one opaque message so a failed login does not reveal whether
	// the username exists or which flag tripped.
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNoRolesAssigned),
		errors.Is(err, domain.ErrAccountDisabled),
		errors.Is(err, domain.ErrAccountLocked),
		errors.Is(err, domain.ErrAccountExpired),
		errors.Is(err, domain.ErrCredentialsExpired):
		return http.StatusUnauthorized, "invalid credentials"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
