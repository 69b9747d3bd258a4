// Package notify mails the team whenever a lead is captured.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/domain"
	"github.com/impacto/site/internal/email"
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/modules/leadapi"
	"github.com/impacto/site/internal/pubsub"
)

// Dependencies holds the services required by the notify module.
type Dependencies struct {
	Config     config.Provider
	Subscriber pubsub.Subscriber
}

// Module subscribes to leads.created and sends one notification per lead.
type Module struct {
	module.BaseModule
	deps   Dependencies
	cancel context.CancelFunc
}

// New creates a new notify module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "notify"
}

// Register provides the email sender selected by EMAIL_PROVIDER.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (domain.EmailSender, error) {
		return email.NewEmailService(m.deps.Config, slog.Default())
	})
	return nil
}

// Boot subscribes to new leads. Without LEAD_NOTIFY_TO the module stays idle.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, i do.Injector) error {
	to := m.deps.Config.GetLeadNotifyTo()
	if to == "" {
		slog.Info("Lead notifications disabled, LEAD_NOTIFY_TO is empty")
		return nil
	}

	sender, err := do.Invoke[domain.EmailSender](i)
	if err != nil {
		return fmt.Errorf("failed to resolve email sender: %w", err)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	n := &Notifier{Sender: sender, To: to, Logger: slog.Default().With("module", "notify")}
	if err := pubsub.Subscribe(subCtx, m.deps.Subscriber, leadapi.LeadCreated, n.HandleLeadCreated); err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", leadapi.LeadCreated.Name(), err)
	}
	slog.Info("Lead notifications enabled", "to", to)
	return nil
}

// Shutdown stops the subscription.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
