// Package app wires the demo application together.
package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/KQAR/expandable/internal/catalog"
	"github.com/KQAR/expandable/internal/domain"
	"github.com/KQAR/expandable/internal/logging"
	"github.com/KQAR/expandable/internal/model"
	"github.com/KQAR/expandable/internal/storage"
)

// App is the application coordinator: it owns the logger, the loaded
// catalog, the preference store and the shared UI state.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	prefs   storage.Repository
	state   *model.AppState
	catalog *domain.Catalog
}

// New creates an App from the given configuration, performing all wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.Init("expandable-demo", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Info("initializing expandable demo",
		slog.Bool("debug", cfg.Debug),
		slog.String("catalog", cfg.CatalogPath),
	)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("determine storage path: %w", err)
		}
	}
	repo := storage.NewJSONRepository(storagePath, logger)

	prefs, err := repo.Load()
	if err != nil {
		logger.Warn("loading preferences failed, using defaults", slog.Any("error", err))
		prefs = storage.DefaultPreferences()
	}

	state := model.NewAppState()
	_ = state.ExpandAnimation.Set(prefs.ExpandAnimation)
	_ = state.CollapseAnimation.Set(prefs.CollapseAnimation)
	_ = state.DefaultExpandable.Set(prefs.DefaultExpandable)

	logger.Info("application initialized",
		slog.Int("sections", len(cat.Sections)),
	)

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		prefs:   repo,
		state:   state,
		catalog: cat,
	}, nil
}

// Run shows the window and enters the Fyne event loop. Blocking.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	window.ShowAndRun()
}

// SavePreferences snapshots the current state bindings to storage.
func (a *App) SavePreferences() {
	expand, _ := a.state.ExpandAnimation.Get()
	collapse, _ := a.state.CollapseAnimation.Get()
	defaultExpandable, _ := a.state.DefaultExpandable.Get()

	prefs := storage.Preferences{
		ExpandAnimation:   expand,
		CollapseAnimation: collapse,
		DefaultExpandable: defaultExpandable,
	}
	if err := a.prefs.Save(prefs); err != nil {
		a.logger.Warn("saving preferences failed", slog.Any("error", err))
	}
}

// FyneApp returns the underlying Fyne application.
func (a *App) FyneApp() fyne.App { return a.fyneApp }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// State returns the shared UI state.
func (a *App) State() *model.AppState { return a.state }

// Catalog returns the loaded catalog.
func (a *App) Catalog() *domain.Catalog { return a.catalog }
