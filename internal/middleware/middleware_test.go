package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, FromContext(WithLogger(context.Background(), l)))
}

func TestLoggerAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	e := echo.New()
	e.Use(middleware.RequestID(), Logger, AccessLog())
	e.GET("/blog", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	reqID := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, reqID)
	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"msg":"request"`)
	assert.Contains(t, out, `"uri":"/blog"`)
	assert.Contains(t, out, `"request_id":"`+reqID+`"`)
}

func TestCacheControl(t *testing.T) {
	e := echo.New()
	mw := CacheControl(24 * time.Hour)
	e.GET("/static/ok", func(c echo.Context) error { return c.String(http.StatusOK, "x") }, mw)
	e.GET("/static/missing", func(c echo.Context) error { return c.String(http.StatusNotFound, "x") }, mw)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/ok", nil))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get(echo.HeaderCacheControl))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing", nil))
	assert.Empty(t, rec.Header().Get(echo.HeaderCacheControl))
}
