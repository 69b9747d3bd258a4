package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/impacto/site/internal/app"
	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/logging"
	"github.com/impacto/site/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	application, err := app.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg, application)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		_ = application.Close(context.Background())
		os.Exit(1)
	}

	// Interrupt or SIGTERM triggers the graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
