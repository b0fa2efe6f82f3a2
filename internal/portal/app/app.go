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

	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	httpapi "github.com/clarityimpactfinance/portal/internal/portal/http"
	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/clarityimpactfinance/portal/internal/portal/store/drivers/memory"
	"github.com/clarityimpactfinance/portal/internal/portal/store/drivers/sqlite"
	"github.com/clarityimpactfinance/portal/pkg/emailjs"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

const (
	// BuildVersion is overridden at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db   store.Store
	keys *cookieKeys

	// Conversations outlive requests; cancelling lifetime drops every
	// pending reply on shutdown.
	lifetime      context.Context
	stop          context.CancelFunc
	conversations *chat.Registry

	// Services
	gateService         *service.GateService
	adminService        *service.AdminService
	contactService      *service.ContactService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := initCookieKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	serverErrors := make(chan error, 1)
	go func() {
		app.logger.Info("portal listening",
			"port", app.cfg.Port,
			"storage_mode", app.cfg.StorageMode,
			"email_dry_run", app.cfg.EmailJSDryRun,
		)
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	// Drop pending chat replies
	app.conversations.CloseAll()
	app.stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase() error {
	switch app.cfg.StorageMode {
	case StorageModeEphemeral:
		app.db = memory.NewStore()
		app.logger.Warn("ephemeral storage: accounts and invitation codes are lost on restart")
		return nil

	case StorageModePersistent:
		// BEGIN IMMEDIATE makes concurrent registrations queue on the write
		// lock instead of failing when they upgrade from a read.
		dsn := fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate",
			app.cfg.DatabaseFile,
		)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}

		app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
		return nil

	default:
		return fmt.Errorf("unknown storage mode %q", app.cfg.StorageMode)
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	var relay service.Relay
	if app.cfg.EmailJSDryRun {
		relay = service.LogRelay{Logger: app.logger}
		app.logger.Warn("email relay in dry-run mode; contact messages are only logged")
	} else {
		relay = emailjs.NewClient(app.cfg.EmailJSBaseURL, app.cfg.EmailJSPublicKey, app.cfg.EmailJSAccessToken)
	}
	if app.cfg.OpenAIAPIKey != "" {
		app.logger.Info("OPENAI_API_KEY is set but unused; IRIS answers from the rule based matcher")
	}

	app.contactService = &service.ContactService{
		Relay:      relay,
		ServiceID:  app.cfg.EmailJSServiceID,
		TemplateID: app.cfg.EmailJSTemplateID,
		Recipient:  app.cfg.ContactRecipient,
	}

	app.gateService = &service.GateService{
		Store:   app.db,
		Latency: app.cfg.GateLatency,
	}
	app.adminService = &service.AdminService{
		Store:         app.db,
		Password:      app.cfg.AdminPassword,
		InvitationTTL: app.cfg.InvitationTTL,
	}

	app.lifetime, app.stop = context.WithCancel(slogx.WithContext(context.Background(), app.logger))
	app.conversations = chat.NewRegistry(app.lifetime, chat.Options{
		ReplyLatency:    app.cfg.ChatLatency,
		GreetingLatency: app.cfg.GreetingLatency,
		Sender:          app.contactService,
	})

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.conversations,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.SessionTTL,
		app.cfg.ChatIdleTimeout,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.Signer,
		app.keys.Session,
		BuildVersion,
		app.db,
		app.cfg.CORSOrigins,
		app.logger,
	)

	// Wire services to router
	router.AdminCookie = app.keys.Admin
	router.GateService = app.gateService
	router.AdminService = app.adminService
	router.ContactService = app.contactService
	router.Conversations = app.conversations
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
