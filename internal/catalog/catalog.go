// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog holds the read-only recipe dataset the browser works over.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/janderssonse/shaker/internal/domain"
)

//go:embed data/cocktails.json
var bundled []byte

// Catalog is an immutable, name-sorted set of recipes. It is safe for concurrent reads.
type Catalog struct {
	recipes []domain.Recipe
	byName  map[string]int
	spirits []string
}

// New validates recipes, copies them and returns them as a sorted catalog.
// Names must be non-empty and unique, and every recipe needs at least one ingredient.
func New(recipes []domain.Recipe) (*Catalog, error) {
	if len(recipes) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	owned := make([]domain.Recipe, 0, len(recipes))
	seen := make(map[string]struct{}, len(recipes))

	for i, recipe := range recipes {
		if err := recipe.Validate(); err != nil {
			return nil, fmt.Errorf("recipe #%d: %w", i+1, err)
		}

		if _, dup := seen[recipe.Name]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateRecipe, recipe.Name)
		}

		seen[recipe.Name] = struct{}{}

		owned = append(owned, recipe.Clone())
	}

	domain.SortByName(owned)

	cat := &Catalog{
		recipes: owned,
		byName:  make(map[string]int, len(owned)),
	}

	spiritSet := make(map[string]struct{})

	for i, recipe := range owned {
		cat.byName[recipe.Name] = i

		if _, ok := spiritSet[recipe.BaseSpirit]; !ok {
			spiritSet[recipe.BaseSpirit] = struct{}{}
			cat.spirits = append(cat.spirits, recipe.BaseSpirit)
		}
	}

	slices.Sort(cat.spirits)

	return cat, nil
}

// Default returns the catalog built from the bundled dataset.
func Default() (*Catalog, error) {
	recipes, err := Parse(bundled, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}

	return New(recipes)
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Recipes returns every recipe in name order. The result is a copy the caller may keep.
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	for i, recipe := range c.recipes {
		out[i] = recipe.Clone()
	}

	return out
}

// Spirits returns the distinct base spirits, sorted.
func (c *Catalog) Spirits() []string {
	return slices.Clone(c.spirits)
}

// Lookup finds a recipe by exact name, falling back to a case-insensitive match.
func (c *Catalog) Lookup(name string) (domain.Recipe, error) {
	if i, ok := c.byName[name]; ok {
		return c.recipes[i].Clone(), nil
	}

	for _, recipe := range c.recipes {
		if strings.EqualFold(recipe.Name, strings.TrimSpace(name)) {
			return recipe.Clone(), nil
		}
	}

	return domain.Recipe{}, fmt.Errorf("%q: %w", name, domain.ErrRecipeNotFound)
}
