package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
	"github.com/savrasovpm/go-pantry-keeper/internal/catalog"
	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/internal/tui"
	"github.com/savrasovpm/go-pantry-keeper/internal/workers"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// App owns the client runtime: the session, the catalog caches, the
// background refresher and the terminal UI.
type App struct {
	cfg      *config.ClientConfig
	session  service.SessionService
	catalogs tui.Catalogs
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (Client, error) {
	gateway, err := adapter.NewHTTPServerGateway(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server gateway: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	session := service.NewSessionService(gateway, storages.State, log)

	catalogs := tui.Catalogs{
		Recipes:    catalog.NewCache(catalog.Recipes(gateway), session, log),
		Freezer:    catalog.NewCache(catalog.FreezerItems(gateway), session, log),
		Categories: catalog.NewCache(catalog.Categories(gateway), session, log),
	}
	catalogs.Recipes.Persist(storages.State)
	catalogs.Freezer.Persist(storages.State)
	catalogs.Categories.Persist(storages.State)

	ui, err := tui.New(session, catalogs, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		cfg:      cfg,
		session:  session,
		catalogs: catalogs,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run drives the login flow and the catalog screens until the user exits.
// A logout drops back into the login flow; quitting from either returns nil.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.session.Restore(ctx); err != nil {
		// a corrupt or stale state file costs a login, nothing more
		a.logger.Warn().Err(err).Msg("restore session")
	}
	if a.session.Token() != "" {
		a.warmStart(ctx)
	}

	a.runWorkers(ctx)

	for {
		identity, err := a.currentIdentity(ctx)
		if err != nil {
			identity, err = a.ui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login flow: %w", err)
			}
		}

		a.logger.Info().Str("username", identity.Username).Msg("session established")

		logout, err := a.ui.MainLoop(ctx, identity)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}

// currentIdentity resolves the restored session, if any.
func (a *App) currentIdentity(ctx context.Context) (models.Identity, error) {
	if a.session.Token() == "" {
		return models.Identity{}, service.ErrInvalidCredentials
	}
	return a.session.CurrentUser(ctx)
}

// warmStart installs the snapshots persisted by the previous run so the
// first screen renders with contents while the initial reload is in flight.
func (a *App) warmStart(ctx context.Context) {
	warm := func(name string, err error) {
		if err != nil && !errors.Is(err, store.ErrLocalSnapshotNotFound) {
			a.logger.Warn().Err(err).Str("collection", name).Msg("warm start failed")
		}
	}

	warm("recipes", a.catalogs.Recipes.WarmStart(ctx))
	warm("freezer-items", a.catalogs.Freezer.WarmStart(ctx))
	warm("categories", a.catalogs.Categories.WarmStart(ctx))
}

// runWorkers starts the background refreshers. Categories are read-mostly
// and shared by every screen, so they are the one collection refreshed
// behind the UI's back.
func (a *App) runWorkers(ctx context.Context) {
	refreshCategories := func(ctx context.Context) error {
		if a.session.Token() == "" || !a.catalogs.Categories.Loaded() {
			return nil
		}
		_, err := a.catalogs.Categories.LoadAll(ctx)
		return err
	}

	workers.NewWorkers(
		workers.NewRefresher("categories", a.cfg.Workers.RefreshInterval, refreshCategories, a.logger),
	).Run(ctx)
}
