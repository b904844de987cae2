// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain contains the core recipe types and errors shared by every layer.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Recipe is a single cocktail from the dataset. Recipes are immutable once loaded.
type Recipe struct {
	Name         string   `json:"name"              toml:"name"              yaml:"name"`
	BaseSpirit   string   `json:"baseSpirit"        toml:"baseSpirit"        yaml:"baseSpirit"`
	Ingredients  []string `json:"ingredients"       toml:"ingredients"       yaml:"ingredients"`
	Instructions string   `json:"instructions"      toml:"instructions"      yaml:"instructions"`
	Garnish      string   `json:"garnish,omitempty" toml:"garnish,omitempty" yaml:"garnish,omitempty"`
	Glass        string   `json:"glass"             toml:"glass"             yaml:"glass"`
	Notes        string   `json:"notes,omitempty"   toml:"notes,omitempty"   yaml:"notes,omitempty"`
}

// HasGarnish reports whether the recipe names a garnish.
func (r Recipe) HasGarnish() bool {
	return strings.TrimSpace(r.Garnish) != ""
}

// HasNotes reports whether the recipe carries free-text notes.
func (r Recipe) HasNotes() bool {
	return strings.TrimSpace(r.Notes) != ""
}

// IngredientText returns the ingredient list joined the way search matches against it.
func (r Recipe) IngredientText() string {
	return strings.Join(r.Ingredients, ", ")
}

// Clone returns a copy that shares no backing arrays with r.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)

	return r
}

// Validate checks the per-record invariants: a non-empty name and at least one ingredient.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRecipe)
	}

	if len(r.Ingredients) == 0 {
		return fmt.Errorf("%w: %q has no ingredients", ErrInvalidRecipe, r.Name)
	}

	return nil
}
