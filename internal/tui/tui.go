// Package tui implements the terminal front end: the public recipe feed and
// detail views, the auth screens, the authoring form with autosave, and the
// signed-in dashboard, wired to the client services via Bubble Tea commands.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/service"
)

type TUI struct {
	services *service.ClientServices
	apiBase  string
	logger   *logger.Logger
}

func New(services *service.ClientServices, cfg config.API, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, apiBase: cfg.BaseURL, logger: log}, nil
}

// Run drives the whole UI until the user quits. The session restored before
// this call decides which navigation targets the guard admits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.apiBase)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
