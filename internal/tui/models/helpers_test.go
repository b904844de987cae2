// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/shaker/internal/domain"
	"github.com/janderssonse/shaker/internal/menu"
	"github.com/janderssonse/shaker/internal/tui/styles"
)

var cmdType = reflect.TypeOf(tea.Cmd(nil)) //nolint:gochecknoglobals

// collect runs cmd and flattens batches. Commands that block (cursor blinks, ticks) are
// abandoned after a short wait.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)

	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if msg == nil {
			return nil
		}

		if _, quit := msg.(tea.QuitMsg); quit {
			return nil
		}

		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
			var out []tea.Msg

			for i := range v.Len() {
				c, _ := v.Index(i).Interface().(tea.Cmd)
				out = append(out, collect(c)...)
			}

			return out
		}

		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// send delivers msg to model, feeds back everything the model produces for itself and
// returns the messages addressed to the App.
func send(t *testing.T, model tea.Model, msg tea.Msg) []tea.Msg {
	t.Helper()

	var out []tea.Msg

	queue := []tea.Msg{msg}

	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 100, "message loop did not settle")

		next := queue[0]
		queue = queue[1:]

		_, cmd := model.Update(next)

		for _, produced := range collect(cmd) {
			switch produced.(type) {
			case SearchChangedMsg, SpiritChangedMsg, SelectRecipeMsg, BackMsg, RevealMsg, ScrolledMsg, CopiedMsg:
				out = append(out, produced)
			default:
				queue = append(queue, produced)
			}
		}
	}

	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRecipes(n int) []domain.Recipe {
	base := []domain.Recipe{
		{Name: "Daiquiri", BaseSpirit: "Rum", Ingredients: []string{"2 oz white rum", "1 oz lime juice"}, Glass: "Coupe"},
		{Name: "Dry Martini", BaseSpirit: "Gin", Ingredients: []string{"2½ oz gin", "½ oz dry vermouth"}, Glass: "Martini"},
		{Name: "Manhattan", BaseSpirit: "Rye Whiskey", Ingredients: []string{"2 oz rye whiskey", "1 oz sweet vermouth"}, Glass: "Coupe"},
	}

	for i := len(base); i < n; i++ {
		base = append(base, domain.Recipe{
			Name:        "Zombie " + string(rune('A'+i)),
			BaseSpirit:  "Rum",
			Ingredients: []string{"1 oz rum"},
			Glass:       "Tiki",
		})
	}

	return base[:n]
}

func listData(c *menu.Controller, s menu.State) ListData {
	filtered := c.Filtered(s)

	return ListData{
		State:   s,
		Visible: menu.Page(filtered, s.VisibleCount()),
		Total:   len(filtered),
		HasMore: s.Pager.HasMore(len(filtered)),
	}
}

func newTestList(t *testing.T, n, width, height int) (*List, *menu.Controller) {
	t.Helper()

	c := menu.NewController(testRecipes(n), menu.DefaultOptions())
	list := NewList(styles.New(), "Cocktail Menu", []string{"Gin", "Rum", "Rye Whiskey"}, menu.DefaultRevealMargin)

	_ = list.Sync(listData(c, c.Initial()))
	_, _ = list.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return list, c
}
