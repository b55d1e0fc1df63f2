package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching sentinel wins.
var errorStatusMap = []errorStatus{
	{service.ErrMissingCredentials, http.StatusBadRequest, "Username and password required"},
	{service.ErrUsernameTaken, http.StatusBadRequest, "Username already taken"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrPlaceNotFound, http.StatusNotFound, "Place not found"},
	{service.ErrSessionTeardown, http.StatusInternalServerError, "Logout failed"},
}

func statusFromError(err error) (int, string, bool) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status, entry.message, true
		}
	}
	return 0, "", false
}

// respondError writes the response for err. Validation errors carry their
// field messages; unknown errors are logged and reported as fallback.
func respondError(c echo.Context, err error, fallback string) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, util.ValidationErrors(vErr.Messages()))
	}
	if status, message, ok := statusFromError(err); ok {
		return c.JSON(status, util.Error(message))
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(fallback)
	return c.JSON(http.StatusInternalServerError, util.Error(fallback))
}

func badRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, util.Error("Invalid request body"))
}
