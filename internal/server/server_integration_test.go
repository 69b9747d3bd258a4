package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacto/site/internal/app"
	"github.com/impacto/site/internal/server"
	"github.com/impacto/site/internal/testutils"
)

func setupServer(t *testing.T) *server.Server {
	t.Helper()
	cfg := testutils.InProcessConfig()
	application, err := app.New(cfg)
	require.NoError(t, err)

	s, err := server.New(cfg, application)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, s.Shutdown(ctx))
	})
	return s
}

func serve(s *server.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestServer_Pages(t *testing.T) {
	s := setupServer(t)

	for _, path := range []string{"/", "/blog", "/blog/como-escalar-tu-plataforma", "/about", "/contacto", "/sitemap.xml"} {
		rec := serve(s, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), path)
	}

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/blog/borrador-roadmap", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "drafts are not served")
	assert.Contains(t, rec.Body.String(), "Página no encontrada")
}

func TestServer_StaticAssets(t *testing.T) {
	s := setupServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/static/js/carousel.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-carousel-ws")
	// Reconnects reuse the per-carousel retry budget instead of starting over.
	assert.Contains(t, rec.Body.String(), "retries >= maxRetries")
	assert.Contains(t, rec.Body.String(), "setTimeout(open, 1000 * retries)")
	assert.Equal(t, "public, max-age=86400", rec.Header().Get(echo.HeaderCacheControl))
}

func TestServer_LeadAPI(t *testing.T) {
	s := setupServer(t)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return serve(s, req)
	}

	rec := post(`{"nombre":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var lead map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.EqualValues(t, 1, lead["id"])

	rec = post(`{"nombre":"Luis","email":"luis-at-example"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
