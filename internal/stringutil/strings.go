// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides small string helpers shared by the menu, CLI and TUI.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// ContainsAny checks if text contains any of the provided substrings.
func ContainsAny(text string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(text, substr) {
			return true
		}
	}

	return false
}

// Truncate shortens text to at most width terminal cells, marking the cut with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// PadRight pads text with spaces up to width terminal cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}
