package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/internal/catalog"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// Catalogs groups the per-collection caches the UI works with.
type Catalogs struct {
	Recipes    *catalog.Cache[models.Recipe]
	Freezer    *catalog.Cache[models.FreezerItem]
	Categories *catalog.Cache[models.Category]
}

type TUI struct {
	session   service.SessionService
	catalogs  Catalogs
	buildInfo models.AppBuildInfo
}

func New(session service.SessionService, catalogs Catalogs, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{session: session, catalogs: catalogs, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register screens until the user either
// authenticates or quits. On success the session service already holds the
// token.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.session),
		"register": NewRegisterModel(ctx, t.session),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Identity{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	return result.identity, nil
}

// MainLoop runs the catalog screens until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.session, t.catalogs, identity)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
