package handlers

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/middleware"
)

const (
	visitorSessionName = "impacto"
	visitorKey         = "visitor_id"
)

// NewSessionStore returns the cookie store backing flash messages and
// visitor ids.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure,
	}
	return store
}

// VisitorID returns the visitor's session id, assigning a new one on the
// first visit. Without a session store every call yields a fresh id.
func VisitorID(c echo.Context) string {
	sess, err := session.Get(visitorSessionName, c)
	if err != nil {
		return uuid.NewString()
	}
	if id, ok := sess.Values[visitorKey].(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	sess.Values[visitorKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save visitor session", "error", err)
	}
	return id
}
