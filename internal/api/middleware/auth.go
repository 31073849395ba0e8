package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/featherpost/social-api/internal/api/metrics"
	"github.com/featherpost/social-api/internal/core/auth"
)

// Auth resolves the request's bearer credential and injects the verified
// claims into the echo context. Malformed and unauthorized both answer 401;
// the distinction is kept for metrics only.
func Auth(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, status := resolver.Resolve(c.Request().Header)
			switch status {
			case auth.StatusAuthorized:
			case auth.StatusMalformed:
				metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			default:
				metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set("username", claims.Username)
			c.Set("user_id", claims.UserID)
			c.Set("uid", claims.UID)

			return next(c)
		}
	}
}
