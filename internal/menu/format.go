// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

import (
	"strings"

	"github.com/janderssonse/shaker/internal/domain"
)

// Markdown renders the detail view of a recipe. Ingredients are shown raw; garnish and
// notes sections appear only when present.
func Markdown(recipe domain.Recipe) string {
	var b strings.Builder

	b.WriteString("# " + IconForSpirit(recipe.BaseSpirit) + " " + recipe.Name + "\n\n")

	b.WriteString("## Ingredients\n\n")

	for _, ingredient := range recipe.Ingredients {
		b.WriteString("- " + ingredient + "\n")
	}

	b.WriteString("\n## Instructions\n\n" + recipe.Instructions + "\n")

	if recipe.HasGarnish() {
		b.WriteString("\n## Garnish\n\n" + recipe.Garnish + "\n")
	}

	b.WriteString("\n## Details\n\n")
	b.WriteString("**Base Spirit:** " + recipe.BaseSpirit + "  \n")
	b.WriteString("**Glass:** " + recipe.Glass + "\n")

	if recipe.HasNotes() {
		b.WriteString("\n## Notes\n\n" + recipe.Notes + "\n")
	}

	return b.String()
}

// PlainText renders a recipe for the clipboard and non-terminal output.
func PlainText(recipe domain.Recipe) string {
	var b strings.Builder

	b.WriteString(recipe.Name + "\n\n")
	b.WriteString("Ingredients:\n")

	for _, ingredient := range recipe.Ingredients {
		b.WriteString("  - " + ingredient + "\n")
	}

	b.WriteString("\nInstructions:\n  " + recipe.Instructions + "\n")

	if recipe.HasGarnish() {
		b.WriteString("\nGarnish: " + recipe.Garnish + "\n")
	}

	b.WriteString("\nBase Spirit: " + recipe.BaseSpirit + "\n")
	b.WriteString("Glass: " + recipe.Glass + "\n")

	if recipe.HasNotes() {
		b.WriteString("\nNotes: " + recipe.Notes + "\n")
	}

	return b.String()
}
