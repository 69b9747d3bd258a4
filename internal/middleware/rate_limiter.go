package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultSubmissionsPerMinute is the lead submission budget per client IP.
const DefaultSubmissionsPerMinute = 10

// RateLimiter limits requests to perMinute per client IP, with a burst of the
// same size. It guards the lead submission endpoints.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultSubmissionsPerMinute
	}
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("rate limit exceeded", "ip", identifier)
			return c.String(http.StatusTooManyRequests, "Demasiadas solicitudes. Inténtalo de nuevo más tarde.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
