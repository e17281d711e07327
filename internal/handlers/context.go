package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the acting user id placed by the
// RequireUserID middleware.
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}
