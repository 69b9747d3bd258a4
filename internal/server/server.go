// Package server assembles the Echo instance: core middleware, static
// assets, error handling and the application modules.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/impacto/site/internal/app"
	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/handlers"
	appmiddleware "github.com/impacto/site/internal/middleware"
	"github.com/impacto/site/internal/rendering"
	"github.com/impacto/site/web"
)

const (
	shutdownTimeout = 10 * time.Second
	staticMaxAge    = 24 * time.Hour
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider
	App *app.App
}

// New creates the Echo instance, then registers and boots every module of
// application.
func New(cfg config.Provider, application *app.App) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	secure := strings.HasPrefix(cfg.GetSiteURL(), "https://")
	e.Use(session.Middleware(handlers.NewSessionStore(cfg.GetSessionSecret(), secure)))

	static := e.Group("/static", appmiddleware.CacheControl(staticMaxAge))
	static.StaticFS("/", echo.MustSubFS(web.FS, "static"))

	setupErrorHandling(e)

	s := &Server{E: e, Cfg: cfg, App: application}
	if err := s.registerModules(); err != nil {
		return nil, err
	}
	if err := s.bootModules(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// registerModules lets every module provide its services to the container.
func (s *Server) registerModules() error {
	for _, m := range s.App.Modules {
		if err := m.Register(s.App.Injector); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
		slog.Debug("Module registered", "module", m.Name())
	}
	return nil
}

// bootModules mounts the routes of every module on the root group.
func (s *Server) bootModules(ctx context.Context) error {
	root := s.E.Group("")
	for _, m := range s.App.Modules {
		if err := m.Boot(ctx, root, s.App.Injector); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
// With CONTENT_WATCH the content directory is reloaded on change.
func (s *Server) Start(ctx context.Context) error {
	if s.Cfg.GetContentWatch() && s.Cfg.GetContentDir() != "" {
		if err := s.App.Deps.Content.Watch(ctx, s.Cfg.GetContentDir()); err != nil {
			slog.Warn("Content watcher unavailable", "error", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", s.Cfg.GetServerAddr())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, then shuts the modules down in reverse
// boot order and finally the container.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	for i := len(s.App.Modules) - 1; i >= 0; i-- {
		m := s.App.Modules[i]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s shutdown: %w", m.Name(), err))
		}
	}
	if err := s.App.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		slog.Info("Server stopped")
	}
	return errors.Join(errs...)
}
