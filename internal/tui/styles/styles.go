// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary lipgloss.Color
	Muted   lipgloss.Color

	// Component styles
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style

	// Layout styles
	Container lipgloss.Style
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary: primary,
		Muted:   muted,

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Bold(true),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground),

		MutedText: lipgloss.NewStyle().
			Foreground(muted),

		PrimaryText: lipgloss.NewStyle().
			Foreground(primary),

		SuccessText: lipgloss.NewStyle().
			Foreground(success),

		ErrorText: lipgloss.NewStyle().
			Foreground(errorColor),

		WarningText: lipgloss.NewStyle().
			Foreground(warning),

		Container: lipgloss.NewStyle().
			Padding(0, 2),
	}
}

// Header returns the sticky list header style. Once the list has scrolled the bottom
// border switches to the primary color to separate the header from the content.
func (s *Styles) Header(scrolled bool) lipgloss.Style {
	border := s.Muted
	if scrolled {
		border = s.Primary
	}

	return lipgloss.NewStyle().
		Padding(1, 2, 0, 2).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(border)
}

// StatusIcon returns styled status icons.
func (s *Styles) StatusIcon(status string) string {
	style := s.Unselected

	var icon string

	switch status {
	case "success", "copied":
		style = s.SuccessText
		icon = "✓"
	case "error", "failed":
		style = s.ErrorText
		icon = "✗"
	case "warning":
		style = s.WarningText
		icon = "!"
	default:
		icon = "•"
	}

	return style.Render(icon)
}
