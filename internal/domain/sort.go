// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders recipes ascending by name using locale-aware collation,
// so "Vieux Carré" sorts next to "Vieux Carre" rather than after "Zombie".
func SortByName(recipes []Recipe) {
	slices.SortStableFunc(recipes, byName())
}

// IsSortedByName reports whether recipes are already in SortByName order.
func IsSortedByName(recipes []Recipe) bool {
	return slices.IsSortedFunc(recipes, byName())
}

func byName() func(a, b Recipe) int {
	// A Collator keeps scratch buffers and is not safe to share.
	collator := collate.New(language.English)

	return func(a, b Recipe) int {
		return collator.CompareString(a.Name, b.Name)
	}
}
