package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An empty uid means the middleware did
// not run or the token carried no usable identity; reject with 401 either way.
func ctxIdentity(c echo.Context) (username, uid string, err error) {
	username, _ = c.Get("username").(string)
	uid, _ = c.Get("uid").(string)
	if username == "" || uid == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, uid, nil
}
