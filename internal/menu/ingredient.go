// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

import (
	"regexp"
	"strings"
)

const units = `oz|ml|tsp|tbsp|teaspoon|tablespoon|dash(?:es)?|barspoon|cubes?|slices?`

var (
	numericQuantity  = regexp.MustCompile(`(?i)\b\d*\.?\d+\s?(?:` + units + `)\b`)
	fractionQuantity = regexp.MustCompile(`(?i)[¼½¾⅓⅔⅛⅜⅝⅞]\s?(?:` + units + `)\b`)
	leadingQuantity  = regexp.MustCompile(`(?i)^\s*(?:one|two|three|a|an|\d+)\s+(?:of\s+)?`)
	repeatedSpace    = regexp.MustCompile(`\s{2,}`)
	edgeComma        = regexp.MustCompile(`^,|,$`)
)

// CleanIngredient strips quantities and units from an ingredient for the list preview,
// e.g. "2½ oz gin" becomes "gin". It is lossy and best-effort, and applying it to its own
// output changes nothing. The result may be empty.
func CleanIngredient(ingredient string) string {
	current := ingredient

	// Every pass that changes something makes the string shorter, so this terminates.
	for {
		next := cleanOnce(current)
		if next == current {
			return next
		}

		current = next
	}
}

func cleanOnce(s string) string {
	s = numericQuantity.ReplaceAllString(s, "")
	s = fractionQuantity.ReplaceAllString(s, "")
	s = leadingQuantity.ReplaceAllString(s, "")
	s = repeatedSpace.ReplaceAllString(s, " ")
	s = edgeComma.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// PreviewIngredients cleans every ingredient, drops empty results and joins the rest
// with ", ".
func PreviewIngredients(ingredients []string) string {
	cleaned := make([]string, 0, len(ingredients))

	for _, ingredient := range ingredients {
		if c := CleanIngredient(ingredient); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	return strings.Join(cleaned, ", ")
}
