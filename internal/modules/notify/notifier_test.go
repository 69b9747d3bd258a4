package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacto/site/internal/modules/leadapi"
	"github.com/impacto/site/internal/pubsub"
)

type sentMail struct {
	to, subject, body string
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentMail{to, subject, htmlBody})
	return nil
}

func (r *recordingSender) mails() []sentMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMail(nil), r.sent...)
}

func TestNotifier_HandleLeadCreated(t *testing.T) {
	sender := &recordingSender{}
	n := &Notifier{Sender: sender, To: "equipo@impacto.dev", Logger: slog.Default()}

	err := n.HandleLeadCreated(context.Background(), leadapi.LeadCreatedEvent{
		ID:        3,
		Nombre:    "Ana <script>",
		Email:     "ana@example.com",
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	mails := sender.mails()
	require.Len(t, mails, 1)
	assert.Equal(t, "equipo@impacto.dev", mails[0].to)
	assert.Equal(t, "Nuevo contacto: Ana <script>", mails[0].subject)
	assert.Contains(t, mails[0].body, "Ana &lt;script&gt;")
	assert.Contains(t, mails[0].body, `href="mailto:ana@example.com"`)
	assert.Contains(t, mails[0].body, "14/03/2025 09:30")
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	var logs bytes.Buffer
	sender := &recordingSender{err: errors.New("smtp down")}
	n := &Notifier{Sender: sender, To: "equipo@impacto.dev", Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	err := n.HandleLeadCreated(context.Background(), leadapi.LeadCreatedEvent{ID: 1, Nombre: "Ana", Email: "ana@example.com"})
	assert.NoError(t, err)
	assert.Contains(t, logs.String(), "smtp down")
}

func TestNotifier_OverTheBus(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{}
	n := &Notifier{Sender: sender, To: "equipo@impacto.dev", Logger: slog.Default()}
	require.NoError(t, pubsub.Subscribe(ctx, bus, leadapi.LeadCreated, n.HandleLeadCreated))

	require.NoError(t, pubsub.Publish(ctx, bus, leadapi.LeadCreated, leadapi.LeadCreatedEvent{ID: 9, Nombre: "Luis", Email: "luis@example.com"}))

	assert.Eventually(t, func() bool { return len(sender.mails()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Nuevo contacto: Luis", sender.mails()[0].subject)
}
