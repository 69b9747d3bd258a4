package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/handlers"
	appmiddleware "github.com/impacto/site/internal/middleware"
)

// setupErrorHandling installs the central error handler: 404s on pages get
// the not found page, HTTP errors keep Echo's default response and any other
// error is logged with a stack trace before answering 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound && wantsPage(c) {
				if rerr := handlers.NotFound(c); rerr != nil {
					logger.Error("Failed to render not found page", "error", rerr)
				}
				return
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// wantsPage reports whether the request expects an HTML page rather than an
// API or asset response.
func wantsPage(c echo.Context) bool {
	p := c.Request().URL.Path
	return !strings.HasPrefix(p, "/api/") && !strings.HasPrefix(p, "/static/") && p != "/health"
}
