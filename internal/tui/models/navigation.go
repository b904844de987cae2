// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the list and detail screens of the cocktail browser.
//
// Screen models never change browsing state themselves. They report what the user asked
// for with the messages below and the root App applies the matching transition.
package models

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/janderssonse/shaker/internal/domain"
)

// Key constants for common key inputs.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// UI constants shared by the screens.
const (
	SelectedPrefix = "❯ "
	GoodbyeMessage = "Cheers! 🍸\n"
)

// SearchChangedMsg reports that the search text changed. Query is the text at the time
// of the keystroke and may be stale by the time the message is handled.
type SearchChangedMsg struct {
	Query string
}

// SpiritChangedMsg reports a new spirit filter; the empty string means all spirits.
type SpiritChangedMsg struct {
	Spirit string
}

// SelectRecipeMsg asks to open the detail screen.
type SelectRecipeMsg struct {
	Recipe domain.Recipe
}

// BackMsg asks to return to the list screen.
type BackMsg struct{}

// RevealMsg asks for the next page. It is sent when the loading sentinel comes into range.
type RevealMsg struct{}

// ScrolledMsg reports the list's new vertical offset in rows.
type ScrolledMsg struct {
	Offset int
}

// CopiedMsg reports the result of copying a recipe to the clipboard.
type CopiedMsg struct {
	Name string
	Err  error
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
