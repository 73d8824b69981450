// Package app assembles the application: configuration, logging, services,
// router and server lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tenderpulse/internal/config"
	apierrors "tenderpulse/internal/errors"
	"tenderpulse/internal/history"
	"tenderpulse/internal/infrastructure"
	"tenderpulse/internal/middleware"
	"tenderpulse/internal/provider"
	"tenderpulse/internal/services"
	transporthttp "tenderpulse/internal/transport/http"
)

// Application owns the wired component graph and the HTTP server.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server

	dataService   *services.DataService
	exportService *services.ExportService
	historyStore  *history.Store
}

// NewApplication loads configuration, initializes logging and wires every
// component.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	historyStore, err := history.NewStore(cfg.HistoryDir(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	client := provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, logger)
	dataService := services.NewDataService(client, historyStore, logger)
	exportService := services.NewExportService(dataService, historyStore, logger)

	app := &Application{
		cfg:           cfg,
		logger:        logger,
		dataService:   dataService,
		exportService: exportService,
		historyStore:  historyStore,
	}
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (a *Application) router() chi.Router {
	errorHandler := apierrors.NewErrorHandler(a.logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(middleware.RateLimit(a.cfg.Security.RateLimit, errorHandler))
	r.Use(middleware.CORS(a.cfg.Security))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/health", transporthttp.NewHealthHandler(a.dataService).Routes())
		r.Mount("/", transporthttp.NewDataHandler(a.dataService, a.logger, errorHandler).Routes())
		r.Mount("/exports", transporthttp.NewExportHandler(a.exportService, a.historyStore, a.logger, errorHandler).Routes())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the HTTP server and blocks until shutdown. An initial provider
// refresh happens in the background so startup never waits on the provider.
func (a *Application) Run() error {
	if a.cfg.Provider.RefreshOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Provider.Timeout)
			defer cancel()
			if _, err := a.dataService.Refresh(ctx, false); err != nil {
				a.logger.Warn("Initial refresh fell back to sample data",
					slog.String("error", err.Error()))
			}
		}()
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting",
			slog.String("addr", a.server.Addr),
			slog.String("provider", a.cfg.Provider.BaseURL))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("Shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return a.shutdown()
}

func (a *Application) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		a.logger.Warn("Failed to close log file", slog.String("error", err.Error()))
	}
	a.logger.Info("Shutdown complete")
	return nil
}
