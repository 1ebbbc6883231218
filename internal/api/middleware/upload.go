package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/api/metrics"
	"github.com/socialsphere/social-api/internal/core/ports"
)

// PicturePathKey is the context key under which Upload stores the name of
// the persisted file.
const PicturePathKey = "picture_path"

// uploadField is the single multipart field inspected by Upload.
const uploadField = "picture"

// Upload persists an optional multipart "picture" field through the file
// store and exposes the stored name to downstream handlers. A request
// without the field (or without a multipart body at all) passes through
// untouched; a storage failure fails the whole request.
//
// Upload must run before Auth on routes using both: parsing the multipart
// body consumes the request stream and must happen exactly once.
func Upload(files ports.FileStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fh, err := c.FormFile(uploadField)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
			}

			src, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open upload: %w", err)
			}
			defer src.Close()

			name, err := files.Save(c.Request().Context(), fh.Filename, src)
			if err != nil {
				return fmt.Errorf("store upload: %w", err)
			}

			metrics.UploadsStoredTotal.Inc()
			c.Set(PicturePathKey, name)
			return next(c)
		}
	}
}
