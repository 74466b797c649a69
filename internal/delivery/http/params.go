package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryInt reads an integer query parameter with a default, clamped to
// [min, max]. Unparseable values fall back to the default.
func queryInt(c echo.Context, name string, def, min, max int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
