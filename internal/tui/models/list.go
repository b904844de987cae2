// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/menu"
	"github.com/janderssonse/shaker/internal/stringutil"
	"github.com/janderssonse/shaker/internal/tui/styles"
)

// Layout constants for the list screen.
const (
	itemHeight     = 2 // name row + preview row
	previewIndent  = "    "
	minListWidth   = 20
	EmptyMessage   = "No cocktails found"
	LoadingMessage = "Loading more..."
)

// ListData is what the list screen renders, computed by the App from the browsing state.
type ListData struct {
	State   menu.State
	Visible []domain.Recipe
	Total   int
	HasMore bool
}

func (d ListData) resultSet() menu.ResultSet {
	return menu.ResultSet{Search: d.State.Search, Spirit: d.State.Spirit, Total: d.Total}
}

// List is the list screen: header with title, search box and spirit filter, followed by
// the scrollable recipe list.
type List struct {
	styles   *styles.Styles
	keys     ListKeyMap
	help     help.Model
	showHelp bool

	title   string
	spirits []string
	width   int
	height  int

	search   textinput.Model
	viewport viewport.Model

	picker      *huh.Form
	pickerValue string

	watcher *menu.Watcher
	release func()

	data       ListData
	cursor     int
	lastOffset int
}

// NewList creates the list screen. spirits are the distinct base spirits offered by the
// spirit picker; revealMargin is how far below the viewport the loading sentinel still
// triggers a reveal.
func NewList(styleConfig *styles.Styles, title string, spirits []string, revealMargin int) *List {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "name or ingredient"
	search.Cursor.SetMode(cursor.CursorStatic)
	search.Focus()

	return &List{
		styles:   styleConfig,
		keys:     DefaultListKeyMap(),
		help:     help.New(),
		title:    title,
		spirits:  spirits,
		search:   search,
		viewport: viewport.New(0, 0),
		watcher:  menu.NewWatcher(revealMargin),
	}
}

// Init initializes the list model.
func (m *List) Init() tea.Cmd {
	return nil
}

// Sync installs new data from the App and re-renders. It binds the reveal watcher to the
// current result set and returns a reveal request when the sentinel is already in range.
// The search box keeps its own text; Sync never writes it back.
func (m *List) Sync(data ListData) tea.Cmd {
	filterChanged := data.State.Search != m.data.State.Search || data.State.Spirit != m.data.State.Spirit
	m.data = data

	if set := data.resultSet(); !m.watcher.BoundTo(set) {
		m.Release()
		m.release = m.watcher.Subscribe(set)
	}

	// A new filter starts again from the top.
	if filterChanged {
		m.cursor = 0
		m.viewport.SetYOffset(0)
	}

	m.cursor = max(min(m.cursor, len(data.Visible)-1), 0)
	m.refresh()

	return tea.Batch(m.offsetChanged(), m.checkReveal())
}

// Release tears down the reveal subscription. The App calls it when leaving the list.
func (m *List) Release() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

// Watching reports whether the reveal watcher is subscribed.
func (m *List) Watching() bool {
	return m.watcher.Active()
}

// SentinelInRange reports whether the loading sentinel is inside the viewport or within
// the reveal margin below it, and more recipes remain.
func (m *List) SentinelInRange() bool {
	if !m.data.HasMore {
		return false
	}

	return m.watcher.Intersects(m.sentinelRow(), m.viewport.YOffset, m.viewport.Height)
}

// Cursor returns the index of the highlighted recipe.
func (m *List) Cursor() int {
	return m.cursor
}

// PickerOpen reports whether the spirit picker is shown.
func (m *List) PickerOpen() bool {
	return m.picker != nil
}

// HelpVisible reports whether the full key help is shown.
func (m *List) HelpVisible() bool {
	return m.showHelp
}

// SearchValue returns the text in the search box.
func (m *List) SearchValue() string {
	return m.search.Value()
}

// Offset returns the viewport's vertical offset.
func (m *List) Offset() int {
	return m.viewport.YOffset
}

// Update handles messages for the list screen.
func (m *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleWindowSizeMsg(sizeMsg)
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, tea.Batch(cmd, m.afterScroll())
	}

	return m, nil
}

// View renders the list screen.
func (m *List) View() string {
	header := m.renderHeader()

	var body string
	if m.picker != nil {
		body = m.styles.Container.Render(m.picker.View())
	} else {
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m *List) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.search.Width = max(msg.Width-len(m.search.Prompt)-10, 10)
	m.help.Width = msg.Width

	if m.picker != nil {
		m.picker = m.picker.WithWidth(max(msg.Width-4, minListWidth))
	}

	m.layout()

	return m, m.checkReveal()
}

func (m *List) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help) && m.search.Value() == "":
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.layout()

		return m, m.checkReveal()
	case key.Matches(msg, m.keys.Spirit):
		return m, m.openPicker()
	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() == "" {
			return m, nil
		}

		m.search.SetValue("")

		return m, emit(SearchChangedMsg{Query: ""})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

		return m, m.afterScroll()
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

		return m, m.afterScroll()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ScrollUp(max(m.viewport.Height, 1))
		m.cursorToViewport()

		return m, m.afterScroll()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ScrollDown(max(m.viewport.Height, 1))
		m.cursorToViewport()

		return m, m.afterScroll()
	case key.Matches(msg, m.keys.Open):
		if len(m.data.Visible) == 0 {
			return m, nil
		}

		return m, emit(SelectRecipeMsg{Recipe: m.data.Visible[m.cursor]})
	}

	before := m.search.Value()

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, emit(SearchChangedMsg{Query: after}))
	}

	return m, cmd
}

func (m *List) openPicker() tea.Cmd {
	m.pickerValue = m.data.State.Spirit

	options := make([]huh.Option[string], 0, len(m.spirits)+1)
	options = append(options, huh.NewOption(menu.AllSpiritsLabel, menu.AllSpirits))

	for _, spirit := range m.spirits {
		options = append(options, huh.NewOption(menu.IconForSpirit(spirit)+" "+spirit, spirit))
	}

	selectField := huh.NewSelect[string]().
		Title("Spirit").
		Description("Show only cocktails built on this spirit").
		Value(&m.pickerValue).
		Options(options...)

	m.picker = huh.NewForm(huh.NewGroup(selectField)).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(false).
		WithWidth(max(m.width-4, minListWidth))

	return m.picker.Init()
}

func (m *List) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == KeyEsc {
		m.picker = nil

		return m, nil
	}

	form, cmd := m.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.picker = f
	}

	switch m.picker.State {
	case huh.StateCompleted:
		m.picker = nil

		return m, emit(SpiritChangedMsg{Spirit: m.pickerValue})
	case huh.StateAborted:
		m.picker = nil

		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *List) moveCursor(delta int) {
	if len(m.data.Visible) == 0 {
		return
	}

	m.cursor = max(min(m.cursor+delta, len(m.data.Visible)-1), 0)
	m.refresh()

	row := m.cursor * itemHeight

	switch {
	case delta < 0 && m.cursor == 0:
		m.viewport.SetYOffset(0)
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row+itemHeight > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row + itemHeight - m.viewport.Height)
	}
}

// cursorToViewport moves the cursor to the first item in view after a page scroll.
func (m *List) cursorToViewport() {
	if len(m.data.Visible) == 0 {
		return
	}

	top := (m.viewport.YOffset + itemHeight - 1) / itemHeight
	m.cursor = max(min(top, len(m.data.Visible)-1), 0)
	m.refresh()
}

// afterScroll reports a changed offset and asks for a reveal if the sentinel came into range.
func (m *List) afterScroll() tea.Cmd {
	return tea.Batch(m.offsetChanged(), m.checkReveal())
}

func (m *List) offsetChanged() tea.Cmd {
	offset := m.viewport.YOffset
	if offset == m.lastOffset {
		return nil
	}

	m.lastOffset = offset

	return emit(ScrolledMsg{Offset: offset})
}

func (m *List) checkReveal() tea.Cmd {
	if m.SentinelInRange() {
		return emit(RevealMsg{})
	}

	return nil
}

func (m *List) sentinelRow() int {
	return len(m.data.Visible) * itemHeight
}

// layout sizes the viewport to the space left between header and footer.
func (m *List) layout() {
	m.viewport.Width = m.width

	height := m.height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter())
	m.viewport.Height = max(height, 0)

	m.refresh()
}

func (m *List) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderItems())
	m.viewport.SetYOffset(offset)
}

func (m *List) renderHeader() string {
	width := max(m.width-4, minListWidth)

	title := m.styles.Title.Render(m.title)
	count := m.styles.MutedText.Render(countLabel(len(m.data.Visible), m.data.Total))
	spirit := m.styles.MutedText.Render("Spirit: ") +
		m.styles.PrimaryText.Render(menu.SpiritLabel(m.data.State.Spirit)) +
		m.styles.MutedText.Render("  (tab to change)")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+count,
		m.search.View(),
		spirit,
	)

	return m.styles.Header(m.data.State.Scrolled).Width(width).Render(content)
}

func (m *List) renderItems() string {
	if len(m.data.Visible) == 0 {
		return m.styles.Container.Render(m.styles.MutedText.Render(EmptyMessage))
	}

	textWidth := max(m.width-len(previewIndent)-4, minListWidth)
	lines := make([]string, 0, len(m.data.Visible)*itemHeight+1)

	for i, recipe := range m.data.Visible {
		name := menu.IconForSpirit(recipe.BaseSpirit) + " " + recipe.Name
		preview := stringutil.Truncate(menu.PreviewIngredients(recipe.Ingredients), textWidth)

		if i == m.cursor {
			lines = append(lines, SelectedPrefix+m.styles.Selected.Render(name))
		} else {
			lines = append(lines, "  "+m.styles.Unselected.Render(name))
		}

		lines = append(lines, previewIndent+m.styles.MutedText.Render(preview))
	}

	if m.data.HasMore {
		lines = append(lines, "  "+m.styles.WarningText.Render(LoadingMessage))
	}

	return strings.Join(lines, "\n")
}

func (m *List) renderFooter() string {
	if m.showHelp {
		return m.styles.Container.Render(m.help.View(m.keys))
	}

	actions := []FooterAction{
		{Key: "↑↓", Action: "Move"},
		{Key: "Enter", Action: "Open"},
		{Key: "Tab", Action: "Spirit"},
		{Key: "Esc", Action: "Clear"},
	}

	return RenderFooter(m.styles, max(m.width, minListWidth), actions, true)
}

func countLabel(visible, total int) string {
	switch {
	case total == 1:
		return "1 cocktail"
	case visible == total:
		return fmt.Sprintf("%d cocktails", total)
	default:
		return fmt.Sprintf("%d of %d cocktails", visible, total)
	}
}
