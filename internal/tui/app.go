// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the interactive cocktail browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/janderssonse/shaker/internal/catalog"
	"github.com/janderssonse/shaker/internal/config"
	"github.com/janderssonse/shaker/internal/menu"
	"github.com/janderssonse/shaker/internal/tui/models"
	"github.com/janderssonse/shaker/internal/tui/styles"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen = menu.Screen

// Screens of the browser.
const (
	ListScreen   = menu.ListScreen
	DetailScreen = menu.DetailScreen
)

// App is the root model. It owns the browsing state and applies every transition through
// the menu controller; the screen models only render and report user intent.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	controller    *menu.Controller
	state         menu.State
	currentScreen Screen
	contentModel  tea.Model
	list          *models.List
	models        map[Screen]tea.Model

	clipboard func(string) error
	quitting  bool
}

// NewApp creates the browser over a catalog with the given configuration.
func NewApp(cat *catalog.Catalog, cfg config.Config) *App {
	controller := menu.NewController(cat.Recipes(), cfg.MenuOptions())
	styleConfig := styles.New()
	list := models.NewList(styleConfig, cfg.Title, cat.Spirits(), cfg.RevealMargin)

	app := &App{
		styles:        styleConfig,
		controller:    controller,
		state:         controller.Initial(),
		currentScreen: ListScreen,
		contentModel:  list,
		list:          list,
		models:        map[Screen]tea.Model{ListScreen: list},
	}

	// The first sync cannot reveal: the viewport has no height yet.
	_ = app.syncList()

	return app
}

// WithClipboard replaces the clipboard writer used by detail screens.
func (a *App) WithClipboard(copyFn func(string) error) *App {
	a.clipboard = copyFn

	return a
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.contentModel.Init()
}

// Update implements the tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case tea.KeyMsg:
		if msg.String() == models.KeyCtrlC {
			a.quitting = true

			return a, tea.Quit
		}
	case models.SearchChangedMsg:
		return a.applySearch()
	case models.SpiritChangedMsg:
		a.state = a.controller.SetSpirit(a.state, msg.Spirit)

		return a, a.syncList()
	case models.RevealMsg:
		return a.handleReveal()
	case models.ScrolledMsg:
		a.state = a.controller.Scroll(a.state, msg.Offset)

		return a, a.syncList()
	case models.SelectRecipeMsg:
		return a.openDetail(msg)
	case models.BackMsg:
		return a.backToList()
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return a.contentModel.View()
}

// GetCurrentScreen returns the current screen (for testing).
func (a *App) GetCurrentScreen() Screen {
	return a.currentScreen
}

// GetContentModel returns the current content model (for testing).
func (a *App) GetContentModel() tea.Model {
	return a.contentModel
}

// State returns the current browsing state.
func (a *App) State() menu.State {
	return a.state
}

// List returns the list screen model.
func (a *App) List() *models.List {
	return a.list
}

// LaunchInteractive starts the interactive TUI interface.
func LaunchInteractive(ctx context.Context, cat *catalog.Catalog, cfg config.Config) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(cat, cfg).Run(ctx)
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height

	var cmds []tea.Cmd

	// Cached screens are resized too so returning to them needs no extra layout pass.
	for screen, model := range a.models {
		updated, cmd := model.Update(msg)
		a.models[screen] = updated

		if screen == a.currentScreen {
			a.contentModel = updated
		}

		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleReveal applies a reveal only if the sentinel is still in range, so stale requests
// queued before a scroll or filter change are dropped.
func (a *App) handleReveal() (tea.Model, tea.Cmd) {
	if a.currentScreen != ListScreen || !a.list.SentinelInRange() {
		return a, nil
	}

	a.state = a.controller.Reveal(a.state)

	return a, a.syncList()
}

// applySearch filters by what the search box holds now. The box owns the text, so a
// SearchChangedMsg that arrives after further typing is only a wake-up call.
func (a *App) applySearch() (tea.Model, tea.Cmd) {
	query := a.list.SearchValue()
	if query == a.state.Search {
		return a, nil
	}

	a.state = a.controller.SetSearch(a.state, query)

	return a, a.syncList()
}

func (a *App) openDetail(msg models.SelectRecipeMsg) (tea.Model, tea.Cmd) {
	if a.currentScreen != ListScreen {
		return a, nil
	}

	a.state = a.controller.Select(a.state, msg.Recipe)
	a.list.Release()

	detail := models.NewDetail(a.styles, *a.state.Selected)
	if a.clipboard != nil {
		detail = detail.WithClipboard(a.clipboard)
	}

	a.currentScreen = DetailScreen
	a.contentModel = detail
	a.models[DetailScreen] = detail

	cmds := []tea.Cmd{detail.Init()}

	if a.width > 0 && a.height > 0 {
		updated, cmd := detail.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.contentModel = updated
		a.models[DetailScreen] = updated
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) backToList() (tea.Model, tea.Cmd) {
	if a.currentScreen != DetailScreen {
		return a, nil
	}

	a.state = a.controller.Back(a.state)
	a.currentScreen = ListScreen
	a.contentModel = a.list

	delete(a.models, DetailScreen)

	return a, a.syncList()
}

func (a *App) syncList() tea.Cmd {
	if a.currentScreen != ListScreen {
		return nil
	}

	filtered := a.controller.Filtered(a.state)

	return a.list.Sync(models.ListData{
		State:   a.state,
		Visible: menu.Page(filtered, a.state.VisibleCount()),
		Total:   len(filtered),
		HasMore: a.state.Pager.HasMore(len(filtered)),
	})
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}
