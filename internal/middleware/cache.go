package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// CacheControl sets a public Cache-Control header on successful responses.
func CacheControl(maxAge time.Duration) echo.MiddlewareFunc {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Before(func() {
				if c.Response().Status < 400 {
					c.Response().Header().Set(echo.HeaderCacheControl, value)
				}
			})
			return next(c)
		}
	}
}
