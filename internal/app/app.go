package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lmittmann/tint"

	"github.com/vadim/engage-metric/internal/config"
	httpcontroller "github.com/vadim/engage-metric/internal/controller/http"
	consoleservice "github.com/vadim/engage-metric/internal/domain/console/service"
	engagementpolicy "github.com/vadim/engage-metric/internal/domain/engagement/policy"
	engagementservice "github.com/vadim/engage-metric/internal/domain/engagement/service"
	"github.com/vadim/engage-metric/internal/domain/engagement/sentiment"
	monitorpolicy "github.com/vadim/engage-metric/internal/domain/monitor/policy"
	monitorservice "github.com/vadim/engage-metric/internal/domain/monitor/service"
	"github.com/vadim/engage-metric/internal/httpx/upstream/sheets"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger

	// Domain policies (interfaces for HTTP handlers)
	engagementPolicy *engagementpolicy.Policy
	monitorPolicy    *monitorpolicy.Policy
	consoleService   *consoleservice.Service

	// Refresher keeps a warm dashboard snapshot when enabled
	refresher *Refresher
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger := newLogger(cfg.Logging)

	// Initialize router with middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	// The dashboard UI polls from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	// Initialize domain layers
	if err := app.initDomains(ctx); err != nil {
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	// Register routes
	app.registerRoutes()

	// Initialize HTTP server
	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Initialize refresher
	if cfg.Refresher.Enabled {
		app.refresher = NewRefresher(app.engagementPolicy, cfg.Refresher.Interval, logger)
	}

	return app, nil
}

// newLogger builds the slog logger from config: JSON in production, a tinted
// text handler for local development.
func newLogger(cfg config.Logging) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if cfg.Format == "text" {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// initDomains initializes domain layers (clients, services, policies)
func (a *App) initDomains(ctx context.Context) error {
	// Initialize Sheets client
	sheetsClient := sheets.New(
		sheets.WithBaseURL(a.cfg.Sheets.BaseURL),
		sheets.WithAPIKey(a.cfg.Sheets.APIKey),
	)

	loc, err := loadLocation(a.cfg.Dashboard.Timezone)
	if err != nil {
		return fmt.Errorf("loading dashboard timezone: %w", err)
	}

	// One normalizer for both the dashboard pipeline and the user lookup
	norm := sentiment.New()
	if a.cfg.Dashboard.TextFallback {
		norm = sentiment.NewWithTextFallback()
	}

	engagementSvc := engagementservice.New(norm, engagementservice.Config{
		TrendDays:       a.cfg.Dashboard.TrendDays,
		RecentPerBucket: a.cfg.Dashboard.RecentPerBucket,
		RecentComments:  a.cfg.Dashboard.RecentComments,
		TopEngagers:     a.cfg.Dashboard.TopEngagers,
		Location:        loc,
	})
	a.engagementPolicy = engagementpolicy.New(sheetsClient, engagementSvc, engagementpolicy.SheetRanges{
		SpreadsheetID: a.cfg.Sheets.SpreadsheetID,
		Comments:      a.cfg.Sheets.CommentsRange,
		Mentions:      a.cfg.Sheets.MentionsRange,
	})

	monitorSvc := monitorservice.New(norm, loc)
	a.monitorPolicy = monitorpolicy.New(sheetsClient, monitorSvc, a.cfg.Sheets.SpreadsheetID, a.cfg.Sheets.CommentsRange)

	a.consoleService = consoleservice.New()

	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() {
	// Health check
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)

	// Dashboard reads go through the refresher when it is enabled
	var dashboardPolicy httpcontroller.DashboardPolicy = a.engagementPolicy
	if a.refresher != nil {
		dashboardPolicy = a.refresher
	}

	a.router.Route("/api", func(r chi.Router) {
		httpcontroller.NewDashboardHandler(dashboardPolicy, a.logger).RegisterRoutes(r)
		httpcontroller.NewMonitorHandler(a.monitorPolicy, a.logger).RegisterRoutes(r)
		httpcontroller.NewConsoleHandler(a.consoleService).RegisterRoutes(r)
	})
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// readyHandler handles readiness check requests
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	// Start refresher if enabled
	if a.refresher != nil {
		a.refresher.Start(ctx)
	}

	// Channel to receive errors from server
	errCh := make(chan error, 1)

	// Start HTTP server in goroutine
	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	// Graceful shutdown
	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	// Stop refresher
	if a.refresher != nil {
		a.refresher.Stop()
	}

	// Shutdown HTTP server with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
