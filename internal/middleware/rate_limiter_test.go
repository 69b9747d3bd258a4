package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	rateLimiter := RateLimiter(DefaultSubmissionsPerMinute)

	e.POST("/contacto", handler, rateLimiter)

	t.Run("allows a request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contacto", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocks requests exceeding the limit", func(t *testing.T) {
		limit := DefaultSubmissionsPerMinute
		clientIP := "192.0.2.2:1234"

		for i := 0; i < limit; i++ {
			req := httptest.NewRequest(http.MethodPost, "/contacto", nil)
			req.RemoteAddr = clientIP
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
		}

		req := httptest.NewRequest(http.MethodPost, "/contacto", nil)
		req.RemoteAddr = clientIP
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Demasiadas solicitudes")
	})
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	e := echo.New()
	e.POST("/contacto", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RateLimiter(1))

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contacto", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, hit("198.51.100.2"), "another client has its own budget")
}
