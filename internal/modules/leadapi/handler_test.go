package leadapi

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

	"github.com/impacto/site/internal/handlers"
	"github.com/impacto/site/internal/pubsub"
)

func newTestServer(t *testing.T, pub pubsub.Publisher) (*echo.Echo, *MemoryStore) {
	t.Helper()
	e := echo.New()
	e.Validator = handlers.NewValidator()

	store := NewMemoryStore()
	h := NewHandler(store, pub)
	e.POST("/api/v1/leads", h.Create)
	e.GET("/api/v1/leads", h.List)
	e.GET("/health", h.Health)
	return e, store
}

func postLead(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := postLead(e, `{"nombre":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"nombre":"Ana","email":"ana@example.com"}`, rec.Body.String())

	rec = postLead(e, `{"nombre":"Luis","email":"luis@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":2,"nombre":"Luis","email":"luis@example.com"}`, rec.Body.String())
}

func TestHandler_CreateRejectsInvalid(t *testing.T) {
	e, store := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed email", `{"nombre":"Ana","email":"not-an-email"}`},
		{"missing nombre", `{"email":"ana@example.com"}`},
		{"blank nombre", `{"nombre":"   ","email":"ana@example.com"}`},
		{"broken json", `{"nombre":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLead(e, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHandler_List(t *testing.T) {
	e, _ := newTestServer(t, nil)
	postLead(e, `{"nombre":"Ana","email":"ana@example.com"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out []leadOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []leadOut{{ID: 1, Nombre: "Ana", Email: "ana@example.com"}}, out)
}

func TestHandler_ListEmptyIsArray(t *testing.T) {
	e, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_PublishesOneEventPerLead(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan LeadCreatedEvent, 4)
	require.NoError(t, pubsub.Subscribe(ctx, bridge, LeadCreated, func(ctx context.Context, ev LeadCreatedEvent) error {
		events <- ev
		return nil
	}))

	e, _ := newTestServer(t, bridge)
	require.Equal(t, http.StatusCreated, postLead(e, `{"nombre":"Ana","email":"ana@example.com"}`).Code)
	require.Equal(t, http.StatusBadRequest, postLead(e, `{"nombre":"Ana","email":"nope"}`).Code)

	select {
	case ev := <-events:
		assert.Equal(t, 1, ev.ID)
		assert.Equal(t, "ana@example.com", ev.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("no leads.created event")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandler_Health(t *testing.T) {
	e, _ := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
