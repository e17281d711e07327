package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RequireUserID extracts the acting user from the X-User-Id header and
// stores it in the context under "userID". Requests without the header are
// rejected with 400.
func RequireUserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("X-User-Id")
			if header == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "X-User-Id header is required")
			}
			id, err := strconv.ParseUint(header, 10, 32)
			if err != nil || id == 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "X-User-Id header must be a positive integer")
			}
			c.Set("userID", uint(id))
			return next(c)
		}
	}
}
