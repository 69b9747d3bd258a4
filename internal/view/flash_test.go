package view_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/view"
)

const testSessionSecret = "impacto-flash-test-secret"

// sessionContext returns an echo.Context that has passed through the
// session middleware.
func sessionContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	var c echo.Context
	capture := func(ctx echo.Context) error { c = ctx; return nil }
	_ = session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret)))(capture)(e.NewContext(req, rec))
	return c
}

func TestFlashMessages(t *testing.T) {
	t.Run("success is read once", func(t *testing.T) {
		c := sessionContext()
		view.SetFlashSuccess(c, "¡Gracias! Te contactaremos.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"¡Gracias! Te contactaremos."}, flashes.Messages.Success)
		assert.Empty(t, flashes.Messages.Error)

		again := view.GetFlashData(c)
		assert.Empty(t, again.Messages.Success, "flashes are cleared after being read")
	})

	t.Run("error", func(t *testing.T) {
		c := sessionContext()
		view.SetFlashError(c, "Error. Intenta de nuevo.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Error. Intenta de nuevo."}, flashes.Messages.Error)
		assert.Empty(t, flashes.Messages.Success)
	})

	t.Run("nothing set", func(t *testing.T) {
		flashes := view.GetFlashData(sessionContext())
		assert.Empty(t, flashes.Messages.Success)
		assert.Empty(t, flashes.Messages.Error)
	})
}

func TestAdapters(t *testing.T) {
	var buf bytes.Buffer
	node := view.AdaptTemplToGomponent(templ.Raw("<p>hola</p>"))
	require.NoError(t, h.Div(node).Render(&buf))
	assert.Equal(t, "<div><p>hola</p></div>", buf.String())

	buf.Reset()
	comp := view.AdaptGomponentToTempl(h.Span(g.Text("a<b")))
	require.NoError(t, comp.Render(context.Background(), &buf))
	assert.Equal(t, "<span>a&lt;b</span>", buf.String())
}
