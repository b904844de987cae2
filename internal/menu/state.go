// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

import (
	"github.com/janderssonse/shaker/internal/domain"
)

// Screen is the browser's current screen.
type Screen int

// The browser has exactly two screens.
const (
	ListScreen Screen = iota
	DetailScreen
)

func (s Screen) String() string {
	switch s {
	case ListScreen:
		return "list"
	case DetailScreen:
		return "detail"
	default:
		return "unknown"
	}
}

// Options tune the controller.
type Options struct {
	PageSize int
	// ResetOnSpiritChange makes a spirit change restart paging like a search change does.
	ResetOnSpiritChange bool
	// ScrollThreshold is the offset, in rows, past which the header counts as scrolled.
	ScrollThreshold int
}

// DefaultOptions keeps the observed behavior: only search changes reset paging.
func DefaultOptions() Options {
	return Options{PageSize: DefaultPageSize}
}

// State is the complete, transient browsing state. It is a value: transitions return a
// new State and never modify the receiver.
type State struct {
	Search   string
	Spirit   string
	Selected *domain.Recipe
	Pager    Pager
	Scrolled bool
}

// Screen derives the current screen from the selection.
func (s State) Screen() Screen {
	if s.Selected != nil {
		return DetailScreen
	}

	return ListScreen
}

// VisibleCount returns the pager's visible count.
func (s State) VisibleCount() int {
	return s.Pager.Visible()
}

// Controller applies transitions to State over one catalog's recipes.
type Controller struct {
	recipes []domain.Recipe
	opts    Options
}

// NewController creates a controller over recipes. The slice is not copied and must not be
// modified afterwards.
func NewController(recipes []domain.Recipe, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	return &Controller{recipes: recipes, opts: opts}
}

// Options returns the controller's options.
func (c *Controller) Options() Options {
	return c.opts
}

// Initial returns the session's starting state: list screen, no search, all spirits.
func (c *Controller) Initial() State {
	return State{Pager: NewPager(c.opts.PageSize)}
}

// Filtered returns the recipes matching the state's search and spirit.
func (c *Controller) Filtered(s State) []domain.Recipe {
	return Filter(c.recipes, s.Search, s.Spirit)
}

// Visible returns the revealed prefix of the filtered recipes.
func (c *Controller) Visible(s State) []domain.Recipe {
	return Page(c.Filtered(s), s.Pager.Visible())
}

// HasMore reports whether a reveal would show more recipes.
func (c *Controller) HasMore(s State) bool {
	return s.Pager.HasMore(len(c.Filtered(s)))
}

// SetSearch changes the search text and restarts paging. Inert on the detail screen.
func (c *Controller) SetSearch(s State, query string) State {
	if s.Screen() != ListScreen || query == s.Search {
		return s
	}

	s.Search = query
	s.Pager = s.Pager.Reset()

	return s
}

// SetSpirit changes the spirit filter. Paging restarts only when ResetOnSpiritChange is
// set. Inert on the detail screen.
func (c *Controller) SetSpirit(s State, spirit string) State {
	if s.Screen() != ListScreen || spirit == s.Spirit {
		return s
	}

	s.Spirit = spirit
	if c.opts.ResetOnSpiritChange {
		s.Pager = s.Pager.Reset()
	}

	return s
}

// Reveal shows the next page of the filtered recipes. Inert on the detail screen.
func (c *Controller) Reveal(s State) State {
	if s.Screen() != ListScreen {
		return s
	}

	s.Pager = s.Pager.Reveal(len(c.Filtered(s)))

	return s
}

// Select opens the detail screen for recipe. Only valid from the list screen.
func (c *Controller) Select(s State, recipe domain.Recipe) State {
	if s.Screen() != ListScreen {
		return s
	}

	selected := recipe.Clone()
	s.Selected = &selected

	return s
}

// Back returns to the list screen and clears the selection; search, spirit and paging
// are kept.
func (c *Controller) Back(s State) State {
	s.Selected = nil

	return s
}

// Scroll records the list's vertical offset for the header separator.
func (c *Controller) Scroll(s State, offset int) State {
	s.Scrolled = offset > c.opts.ScrollThreshold

	return s
}
