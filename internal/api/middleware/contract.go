package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/featherpost/social-api/internal/api/contract"
)

// RequireHeaders short-circuits any request missing a header its operation
// declares as required, before handler logic or persistence runs.
func RequireHeaders(op contract.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := contract.Validate(op, c.Request().Header); err != nil {
				var missing *contract.MissingHeaderError
				if errors.As(err, &missing) {
					return echo.NewHTTPError(http.StatusBadRequest, missing.Error())
				}
				// Unknown operation: a routing bug, but still a client error
				// to the caller rather than a vacuous pass.
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return next(c)
		}
	}
}
