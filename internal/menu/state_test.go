// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/shaker/internal/domain"
)

func rumRecipes(n int) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, n+1)
	for i := range n {
		recipes = append(recipes, domain.Recipe{
			Name:        fmt.Sprintf("Rum Drink %02d", i),
			BaseSpirit:  "Rum",
			Ingredients: []string{"2 oz rum"},
		})
	}

	return append(recipes, domain.Recipe{Name: "Gimlet", BaseSpirit: "Gin", Ingredients: []string{"2 oz gin"}})
}

func TestControllerInitial(t *testing.T) {
	t.Parallel()

	c := NewController(fixtureRecipes(), DefaultOptions())
	s := c.Initial()

	assert.Equal(t, ListScreen, s.Screen())
	assert.Empty(t, s.Search)
	assert.Equal(t, AllSpirits, s.Spirit)
	assert.Nil(t, s.Selected)
	assert.Equal(t, DefaultPageSize, s.VisibleCount())
	assert.False(t, s.Scrolled)
}

func TestControllerRumReveal(t *testing.T) {
	t.Parallel()

	c := NewController(rumRecipes(10), DefaultOptions())
	s := c.SetSpirit(c.Initial(), "Rum")

	visible := c.Visible(s)
	require.Len(t, visible, 6)
	assert.True(t, domain.IsSortedByName(visible))
	assert.True(t, c.HasMore(s))

	s = c.Reveal(s)
	assert.Len(t, c.Visible(s), 10)
	assert.False(t, c.HasMore(s))
}

func TestControllerSearchResetsPaging(t *testing.T) {
	t.Parallel()

	c := NewController(rumRecipes(20), DefaultOptions())
	s := c.Reveal(c.Initial())
	require.Equal(t, 12, s.VisibleCount())

	s = c.SetSearch(s, "Drink")
	assert.Equal(t, 6, s.VisibleCount())

	s = c.Reveal(s)
	same := c.SetSearch(s, "Drink")
	assert.Equal(t, 12, same.VisibleCount(), "unchanged search keeps paging")
}

func TestControllerSpiritChange(t *testing.T) {
	t.Parallel()

	t.Run("keeps paging by default", func(t *testing.T) {
		t.Parallel()

		c := NewController(rumRecipes(20), DefaultOptions())
		s := c.SetSpirit(c.Reveal(c.Initial()), "Rum")
		assert.Equal(t, 12, s.VisibleCount())
		assert.Equal(t, "Rum", s.Spirit)
	})

	t.Run("resets paging when configured", func(t *testing.T) {
		t.Parallel()

		c := NewController(rumRecipes(20), Options{PageSize: 6, ResetOnSpiritChange: true})
		s := c.SetSpirit(c.Reveal(c.Initial()), "Rum")
		assert.Equal(t, 6, s.VisibleCount())
	})
}

func TestControllerVisibleNeverExceedsFiltered(t *testing.T) {
	t.Parallel()

	c := NewController(rumRecipes(20), DefaultOptions())
	s := c.Initial()

	for range 5 {
		s = c.Reveal(s)
	}

	s = c.SetSpirit(s, "Gin")
	assert.Len(t, c.Visible(s), 1)
	assert.False(t, c.HasMore(s))
}

func TestControllerSelectAndBack(t *testing.T) {
	t.Parallel()

	c := NewController(rumRecipes(20), DefaultOptions())
	s := c.SetSearch(c.Initial(), "Rum")
	s = c.Reveal(s)
	s = c.SetSpirit(s, "Rum")

	recipe := c.Visible(s)[2]
	detail := c.Select(s, recipe)

	require.Equal(t, DetailScreen, detail.Screen())
	require.NotNil(t, detail.Selected)
	assert.Equal(t, recipe.Name, detail.Selected.Name)
	assert.Equal(t, ListScreen, s.Screen(), "transitions do not modify their input")

	back := c.Back(detail)
	assert.Equal(t, ListScreen, back.Screen())
	assert.Nil(t, back.Selected)
	assert.Equal(t, "Rum", back.Search)
	assert.Equal(t, "Rum", back.Spirit)
	assert.Equal(t, 12, back.VisibleCount())
}

func TestControllerDetailIsInert(t *testing.T) {
	t.Parallel()

	c := NewController(rumRecipes(20), DefaultOptions())
	list := c.Initial()
	detail := c.Select(list, c.Visible(list)[0])

	assert.Equal(t, detail, c.SetSearch(detail, "gin"))
	assert.Equal(t, detail, c.SetSpirit(detail, "Gin"))
	assert.Equal(t, detail, c.Reveal(detail))
	assert.Equal(t, detail, c.Select(detail, c.Visible(list)[1]))
}

func TestControllerScroll(t *testing.T) {
	t.Parallel()

	c := NewController(fixtureRecipes(), DefaultOptions())
	s := c.Scroll(c.Initial(), 1)
	assert.True(t, s.Scrolled)
	assert.False(t, c.Scroll(s, 0).Scrolled)

	c = NewController(fixtureRecipes(), Options{ScrollThreshold: 3})
	assert.Equal(t, DefaultPageSize, c.Options().PageSize)
	assert.False(t, c.Scroll(c.Initial(), 3).Scrolled)
	assert.True(t, c.Scroll(c.Initial(), 4).Scrolled)
}

func TestScreenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "list", ListScreen.String())
	assert.Equal(t, "detail", DetailScreen.String())
	assert.Equal(t, "unknown", Screen(9).String())
}
