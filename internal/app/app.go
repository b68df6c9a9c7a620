package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/provider"
	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/storage"
	webserver "github.com/SanjayD11/NourishNet-sub001/internal/adapters/web/server"
	"github.com/SanjayD11/NourishNet-sub001/internal/adapters/web/websocket"
	"github.com/SanjayD11/NourishNet-sub001/internal/config"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/services/preview"
	"github.com/SanjayD11/NourishNet-sub001/internal/telemetry"
)

// Application holds the core components of the service.
// It acts as the facade for the whole system, orchestrating the preview core
// and its infrastructure.
type Application struct {
	Config    *config.Config
	Service   *preview.Manager
	WebServer *webserver.Server
	WSManager *websocket.WSManager

	events *storage.SQLiteAdapter
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	events, err := app.initStorage()
	if err != nil {
		return err
	}
	app.events = events

	// 2. Provider adapters
	urls := provider.NewURLBuilder(app.Config.MapsBaseURL, app.Config.StaticMapsBaseURL)
	probe := provider.NewHTTPProbe(app.Config.ProbeTimeout)

	// 3. Preview core
	app.Service = preview.NewManager(urls, probe, events)

	// 4. Web layer; the websocket sink is wired back into the core so every
	// applied transition is pushed to connected hosts.
	app.WSManager = websocket.NewWSManager()
	app.WSManager.Service = app.Service
	app.Service.SetDirectiveSink(app.WSManager)

	app.WebServer = webserver.NewServer(app.Config.Addr, app.Service, app.WSManager, app.Config.RetryLimit)

	return nil
}

func (app *Application) initStorage() (*storage.SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	events, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init event storage: %w", err)
	}

	slog.Info("Event storage ready", "path", app.Config.DBPath)
	return events, nil
}

// Run starts the web server and blocks until the context is cancelled.
func (app *Application) Run(ctx context.Context) error {
	return app.WebServer.Run(ctx)
}

// Close releases held resources.
func (app *Application) Close() {
	if app.events != nil {
		if err := app.events.Close(); err != nil {
			log.Printf("Warning: failed to close event storage: %v", err)
		}
	}
}
