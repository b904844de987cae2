// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package menu implements the browsing logic behind the list and detail screens:
// filtering, incremental reveal, ingredient previews, spirit icons and the view state.
package menu

import (
	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/stringutil"
)

// AllSpirits is the spirit filter value that matches every recipe.
const AllSpirits = ""

// AllSpiritsLabel is how the empty spirit filter is shown to the user.
const AllSpiritsLabel = "All Spirits"

// Matches reports whether a recipe passes the search query and spirit filter.
// The query is matched case-insensitively against the name or the comma-joined
// ingredient list; the spirit must equal the base spirit exactly unless it is empty.
func Matches(recipe domain.Recipe, query, spirit string) bool {
	if spirit != AllSpirits && recipe.BaseSpirit != spirit {
		return false
	}

	if query == "" {
		return true
	}

	return stringutil.ContainsIgnoreCase(recipe.Name, query) ||
		stringutil.ContainsIgnoreCase(recipe.IngredientText(), query)
}

// Filter returns the recipes that match query and spirit, sorted by name.
// The input slice is left untouched.
func Filter(recipes []domain.Recipe, query, spirit string) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))

	for _, recipe := range recipes {
		if Matches(recipe, query, spirit) {
			result = append(result, recipe)
		}
	}

	if !domain.IsSortedByName(result) {
		domain.SortByName(result)
	}

	return result
}

// SpiritLabel returns the display label for a spirit filter value.
func SpiritLabel(spirit string) string {
	if spirit == AllSpirits {
		return AllSpiritsLabel
	}

	return spirit
}
