package client

import (
	"context"
	"fmt"
	"time"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/internal/store"
	"github.com/foodblog/go-food-blog/internal/tui"
	"github.com/foodblog/go-food-blog/internal/workers"
)

const lookupRefreshInterval = 15 * time.Minute

// App owns the client process lifecycle: wire the layers, restore any
// persisted session, run the background workers and the UI until the user
// quits.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions := session.NewStore(
		session.NewDurableTokenStorage(cfg.Session.Dir),
		session.NewScopedTokenStorage(),
		log,
	)

	services := service.NewClientServices(storages, serverAdapter, sessions, cfg.API, log)

	ui, err := tui.New(services, cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run implements [Client]. The lookup refresher keeps the cached form
// lookups warm while the UI is open; it is stopped once the UI exits.
func (a *App) Run() error {
	ctx := context.Background()

	sess := a.services.AuthService.Restore()
	if sess.Authenticated {
		a.logger.Info().Str("user_id", sess.UserID).Msg("session restored")
	}

	background := workers.New(
		workers.NewLookupRefreshWorker(ctx, a.services.LookupsService, lookupRefreshInterval, a.logger),
	)
	background.Run()
	defer background.Stop()

	return a.ui.Run(ctx)
}
