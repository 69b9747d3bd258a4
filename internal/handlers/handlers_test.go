package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/leads"
	"github.com/impacto/site/internal/rendering"
	"github.com/impacto/site/internal/testutils"
)

const testSite = `name: Impacto
description: Software a medida
hero:
  - image: /img/uno.jpg
    phrase: Transformamos ideas
  - image: /img/dos.jpg
    phrase: Arquitecturas que escalan
testimonials:
  - quote: Excelente equipo
    author: Laura
about:
  headline: Somos Impacto
contact:
  headline: Hablemos de tu proyecto
  sub: Respondemos en 24 horas.
`

func testPost(title, date string, draft bool) string {
	d := "false"
	if draft {
		d = "true"
	}
	return "---\ntitle: " + title + "\ndescription: Resumen\npublishedAt: " + date + "\ndraft: " + d + "\n---\n# " + title + "\n\nCuerpo del artículo.\n"
}

func testStore(t *testing.T) *content.Store {
	t.Helper()
	return testutils.ContentStore(t, map[string]string{
		content.SiteFile:           testSite,
		"blog/escalar.md":          testPost("Escalar", "2024-05-01", false),
		"blog/automatizacion.md":   testPost("Automatización", "2024-06-01", false),
		"blog/borrador-secreto.md": testPost("Borrador secreto", "2024-07-01", true),
	})
}

type stubCreator struct {
	err   error
	calls atomic.Int32
}

func (s *stubCreator) CreateLead(ctx context.Context, req leads.CreateLeadRequest) (*leads.Lead, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &leads.Lead{ID: 1, Nombre: req.Nombre, Email: req.Email}, nil
}

func newTestEcho(t *testing.T, creator leads.Creator) *echo.Echo {
	t.Helper()
	store := testStore(t)
	forms := leads.NewForms(creator, time.Minute)

	e := echo.New()
	e.Renderer = rendering.New()
	e.Validator = NewValidator()
	e.Use(session.Middleware(NewSessionStore("test-secret", false)))

	site := NewSiteHandler(store, forms)
	contact := NewContactHandler(store, forms, time.Second)
	sitemap := NewSitemapHandler(store, "https://impacto.dev/")
	e.GET("/", site.HomeGet)
	e.GET("/about", site.AboutGet)
	e.GET("/blog", site.BlogGet)
	e.GET("/blog/:slug", site.PostGet)
	e.GET(ContactPath, contact.ContactGet)
	e.POST(ContactPath, contact.ContactPost)
	e.GET("/sitemap.xml", sitemap.SitemapGet)
	e.GET("/robots.txt", sitemap.RobotsGet)
	return e
}

func get(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, ContactPath, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSiteHandler_Pages(t *testing.T) {
	e := newTestEcho(t, &stubCreator{})

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Impacto</title>")
	assert.Contains(t, body, `data-carousel="hero"`)
	assert.Contains(t, body, "Transformamos ideas")
	assert.Contains(t, body, "Excelente equipo")
	assert.Contains(t, body, `id="lead-form"`)
	assert.NotContains(t, body, "Borrador secreto")

	rec = get(e, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Less(t, strings.Index(body, "Automatización"), strings.Index(body, "Escalar"), "newest first")
	assert.NotContains(t, body, "Borrador secreto")

	rec = get(e, "/blog/escalar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cuerpo del artículo.")
	assert.Contains(t, rec.Body.String(), "<title>Escalar - Impacto</title>")

	rec = get(e, "/about")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Somos Impacto")

	rec = get(e, ContactPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hablemos de tu proyecto")
}

func TestSiteHandler_UnknownAndDraftPostsAreNotFound(t *testing.T) {
	e := newTestEcho(t, &stubCreator{})

	assert.Equal(t, http.StatusNotFound, get(e, "/blog/no-existe").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/blog/borrador-secreto").Code)
}

func TestContactHandler_HTMX(t *testing.T) {
	valid := url.Values{"nombre": {" Ana "}, "email": {"ana@example.com"}}

	t.Run("success clears the form", func(t *testing.T) {
		creator := &stubCreator{}
		e := newTestEcho(t, creator)

		rec := postForm(e, valid, true)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<form id="lead-form"`), "htmx gets the fragment only")
		assert.Contains(t, body, msgLeadSuccess)
		assert.Contains(t, body, `data-status="success"`)
		assert.NotContains(t, body, "ana@example.com")
		assert.EqualValues(t, 1, creator.calls.Load())
	})

	t.Run("backend failure keeps the values", func(t *testing.T) {
		creator := &stubCreator{err: &leads.HTTPStatusError{StatusCode: http.StatusInternalServerError}}
		e := newTestEcho(t, creator)

		rec := postForm(e, valid, true)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, msgLeadError)
		assert.Contains(t, body, `value="ana@example.com"`)
		assert.NotContains(t, body, " disabled>", "the button is enabled again after an error")
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		creator := &stubCreator{}
		e := newTestEcho(t, creator)

		rec := postForm(e, url.Values{"nombre": {"Ana"}, "email": {"no-es-un-correo"}}, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), msgLeadError)
		assert.Zero(t, creator.calls.Load())
	})
}

func TestContactHandler_PlainFormFallsBackToFlash(t *testing.T) {
	e := newTestEcho(t, &stubCreator{err: errors.New("connection refused")})

	rec := postForm(e, url.Values{"nombre": {"Ana"}, "email": {"ana@example.com"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, ContactPath, rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	page := get(e, ContactPath, cookies...)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), msgLeadError)
}

func TestSitemapHandler(t *testing.T) {
	e := newTestEcho(t, &stubCreator{})

	rec := get(e, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://impacto.dev/</loc>")
	assert.Contains(t, body, "<loc>https://impacto.dev/contacto</loc>")
	assert.Contains(t, body, "<loc>https://impacto.dev/blog/escalar</loc><lastmod>2024-05-01</lastmod>")
	assert.NotContains(t, body, "borrador-secreto", "drafts are not listed")

	rec = get(e, "/robots.txt")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://impacto.dev/sitemap.xml")
}
