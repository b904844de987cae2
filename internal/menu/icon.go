// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

import (
	"strings"

	"github.com/janderssonse/shaker/internal/stringutil"
)

// DefaultIcon is shown for spirits no keyword recognises.
const DefaultIcon = "🍸"

// spiritIcons is checked in order; the first group with a matching keyword wins.
var spiritIcons = []struct { //nolint:gochecknoglobals
	keywords []string
	icon     string
}{
	{[]string{"whiskey", "bourbon", "rye"}, "🥃"},
	{[]string{"gin"}, "🍸"},
	{[]string{"rum"}, "🍹"},
	{[]string{"vodka"}, "🍶"},
	{[]string{"tequila"}, "🌵"},
	{[]string{"pisco"}, "🍋"},
	{[]string{"aperol"}, "🍊"},
	{[]string{"brandy", "cognac"}, "🍷"},
}

// IconForSpirit maps a base-spirit label to a decorative glyph.
func IconForSpirit(baseSpirit string) string {
	key := strings.ToLower(baseSpirit)

	for _, entry := range spiritIcons {
		if stringutil.ContainsAny(key, entry.keywords...) {
			return entry.icon
		}
	}

	return DefaultIcon
}
