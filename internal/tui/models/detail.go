// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/menu"
	"github.com/janderssonse/shaker/internal/tui/styles"
)

const (
	defaultDetailWidth = 80
	maxWrapWidth       = 100
)

// Detail is the recipe detail screen.
type Detail struct {
	styles   *styles.Styles
	keys     DetailKeyMap
	recipe   domain.Recipe
	viewport viewport.Model
	renderer *glamour.TermRenderer
	wrap     int
	width    int
	height   int
	status   string

	copyFn func(string) error
}

// NewDetail creates the detail screen for recipe.
func NewDetail(styleConfig *styles.Styles, recipe domain.Recipe) *Detail {
	m := &Detail{
		styles:   styleConfig,
		keys:     DefaultDetailKeyMap(),
		recipe:   recipe,
		viewport: viewport.New(defaultDetailWidth, 0),
		copyFn:   clipboard.WriteAll,
	}

	m.updateContent()

	return m
}

// WithClipboard replaces the clipboard writer.
func (m *Detail) WithClipboard(copyFn func(string) error) *Detail {
	m.copyFn = copyFn

	return m
}

// Recipe returns the recipe shown.
func (m *Detail) Recipe() domain.Recipe {
	return m.recipe
}

// Status returns the last status line, e.g. the clipboard result.
func (m *Detail) Status() string {
	return m.status
}

// Init initializes the detail model.
func (m *Detail) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail screen.
func (m *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.resize()
		m.updateContent()

		return m, nil
	case CopiedMsg:
		if msg.Err != nil {
			m.status = m.styles.StatusIcon("error") + " " + m.styles.ErrorText.Render("Copy failed: "+msg.Err.Error())
		} else {
			m.status = m.styles.StatusIcon("copied") + " " + m.styles.SuccessText.Render("Copied "+msg.Name+" to clipboard")
		}

		m.resize()

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, emit(BackMsg{})
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyRecipe()
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ScrollUp(max(m.viewport.Height, 1))
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ScrollDown(max(m.viewport.Height, 1))
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the detail screen.
func (m *Detail) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderFooter())
}

func (m *Detail) copyRecipe() tea.Cmd {
	text := menu.PlainText(m.recipe)
	name := m.recipe.Name
	copyFn := m.copyFn

	return func() tea.Msg {
		return CopiedMsg{Name: name, Err: copyFn(text)}
	}
}

func (m *Detail) resize() {
	m.viewport.Height = max(m.height-lipgloss.Height(m.renderFooter()), 0)
}

func (m *Detail) updateContent() {
	wrap := min(max(m.viewport.Width-4, minListWidth), maxWrapWidth)
	if m.renderer == nil || wrap != m.wrap {
		m.renderer = newRenderer(wrap)
		m.wrap = wrap
	}

	content, err := m.renderer.Render(menu.Markdown(m.recipe))
	if err != nil {
		content = fmt.Sprintf("Error rendering recipe: %v\n\n%s", err, menu.PlainText(m.recipe))
	}

	m.viewport.SetContent(strings.TrimRight(content, "\n"))
}

func (m *Detail) renderFooter() string {
	actions := []FooterAction{
		{Key: "Esc", Action: "Back"},
		{Key: "↑↓", Action: "Scroll"},
		{Key: "c", Action: "Copy"},
	}

	footer := RenderFooter(m.styles, max(m.width, minListWidth), actions, false)
	if m.status == "" {
		return footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Container.Render(m.status), footer)
}

func newRenderer(wrap int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	return renderer
}
