package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware did not run on this route;
// fail closed.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusForbidden, "missing authentication claims")
	}
	return id, nil
}

// ctxPicturePath returns the stored filename set by the Upload middleware,
// empty when the request carried no picture.
func ctxPicturePath(c echo.Context) string {
	p, _ := c.Get(middleware.PicturePathKey).(string)
	return p
}
