// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRendersRecipes(t *testing.T) {
	t.Parallel()

	list, _ := newTestList(t, 3, 80, 24)
	view := list.View()

	assert.Contains(t, view, "Cocktail Menu")
	assert.Contains(t, view, "All Spirits")
	assert.Contains(t, view, "🍸 Dry Martini")
	assert.Contains(t, view, "🍹 Daiquiri")
	assert.Contains(t, view, "🥃 Manhattan")
	assert.Contains(t, view, "gin, dry vermouth")
	assert.Contains(t, view, "3 cocktails")
	assert.NotContains(t, view, LoadingMessage)
	assert.NotContains(t, view, EmptyMessage)
}

func TestListEmptyResult(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 3, 80, 24)
	_ = list.Sync(listData(c, c.SetSearch(c.Initial(), "absinthe")))

	assert.Contains(t, list.View(), EmptyMessage)
	assert.Empty(t, send(t, list, tea.KeyMsg{Type: tea.KeyEnter}), "enter on an empty list does nothing")
}

func TestListSentinel(t *testing.T) {
	t.Parallel()

	t.Run("in range asks for a reveal", func(t *testing.T) {
		t.Parallel()

		list, c := newTestList(t, 10, 80, 40)
		assert.Contains(t, list.View(), LoadingMessage)
		assert.Contains(t, list.View(), "6 of 10 cocktails")
		assert.True(t, list.SentinelInRange())

		cmd := list.Sync(listData(c, c.Initial()))
		assert.Equal(t, []any{RevealMsg{}}, toAny(collect(cmd)))
	})

	t.Run("out of range waits for scrolling", func(t *testing.T) {
		t.Parallel()

		list, c := newTestList(t, 10, 80, 12)
		assert.False(t, list.SentinelInRange())
		assert.Nil(t, list.Sync(listData(c, c.Initial())))

		msgs := send(t, list, tea.KeyMsg{Type: tea.KeyPgDown})
		assert.Contains(t, msgs, RevealMsg{})
		assert.Positive(t, list.Offset())
	})

	t.Run("nothing more to reveal", func(t *testing.T) {
		t.Parallel()

		list, c := newTestList(t, 10, 80, 40)
		s := c.Reveal(c.Initial())
		assert.Nil(t, list.Sync(listData(c, s)))
		assert.False(t, list.SentinelInRange())
		assert.NotContains(t, list.View(), LoadingMessage)
	})
}

func TestListWatcherSubscription(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 10, 80, 24)
	assert.True(t, list.Watching())

	list.Release()
	assert.False(t, list.Watching())
	assert.False(t, list.SentinelInRange(), "released watcher never triggers")

	_ = list.Sync(listData(c, c.Initial()))
	assert.True(t, list.Watching())

	_ = list.Sync(listData(c, c.SetSpirit(c.Initial(), "Gin")))
	assert.True(t, list.Watching(), "a new result set gets a fresh subscription")
}

func TestListSearchInput(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 3, 80, 24)

	msgs := send(t, list, keyRunes("g"))
	assert.Equal(t, []tea.Msg{SearchChangedMsg{Query: "g"}}, msgs)
	assert.Equal(t, "g", list.SearchValue())

	_ = list.Sync(listData(c, c.SetSearch(c.Initial(), "g")))

	msgs = send(t, list, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{SearchChangedMsg{Query: ""}}, msgs)
	assert.Empty(t, list.SearchValue())

	assert.Empty(t, send(t, list, tea.KeyMsg{Type: tea.KeyEsc}), "esc on an empty search does nothing")
}

func TestListSyncKeepsTypedText(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 3, 80, 24)

	send(t, list, keyRunes("g"))
	send(t, list, keyRunes("i"))

	// data computed for an older query must not rewind the box
	_ = list.Sync(listData(c, c.SetSearch(c.Initial(), "g")))

	assert.Equal(t, "gi", list.SearchValue())
	assert.Equal(t, "g", list.data.State.Search)
}

func TestListRebindsWatcherForEqualSizedResults(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 3, 80, 24)

	rum := listData(c, c.SetSearch(c.Initial(), "rum"))
	gin := listData(c, c.SetSearch(c.Initial(), "gin"))
	require.Equal(t, rum.Total, gin.Total)

	_ = list.Sync(rum)
	require.True(t, list.watcher.BoundTo(rum.resultSet()))

	_ = list.Sync(gin)
	assert.True(t, list.watcher.BoundTo(gin.resultSet()))
	assert.False(t, list.watcher.BoundTo(rum.resultSet()))
}

func TestListCursorAndOpen(t *testing.T) {
	t.Parallel()

	list, _ := newTestList(t, 3, 80, 24)

	msgs := send(t, list, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Daiquiri", msgs[0].(SelectRecipeMsg).Recipe.Name)

	send(t, list, tea.KeyMsg{Type: tea.KeyDown})
	send(t, list, tea.KeyMsg{Type: tea.KeyDown})
	send(t, list, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, list.Cursor(), "cursor stops at the last item")

	send(t, list, tea.KeyMsg{Type: tea.KeyUp})

	msgs = send(t, list, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Dry Martini", msgs[0].(SelectRecipeMsg).Recipe.Name)
}

func TestListScrollReportsOffset(t *testing.T) {
	t.Parallel()

	list, c := newTestList(t, 20, 80, 12)
	s := c.Reveal(c.Reveal(c.Initial()))
	_ = list.Sync(listData(c, s))

	msgs := send(t, list, tea.KeyMsg{Type: tea.KeyPgDown})
	require.NotEmpty(t, msgs)
	assert.Equal(t, ScrolledMsg{Offset: list.Offset()}, msgs[0])
	assert.Positive(t, list.Cursor())

	msgs = send(t, list, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Contains(t, msgs, ScrolledMsg{Offset: 0})
	assert.Zero(t, list.Cursor())
}

func TestListHelpToggle(t *testing.T) {
	t.Parallel()

	list, _ := newTestList(t, 3, 80, 24)
	assert.False(t, list.HelpVisible())

	send(t, list, keyRunes("?"))
	assert.True(t, list.HelpVisible())
	assert.Contains(t, list.View(), "page up")
	assert.Empty(t, list.SearchValue(), "? is not typed into the search box")

	send(t, list, keyRunes("?"))
	assert.False(t, list.HelpVisible())
}

func TestListQuestionMarkIsSearchableAfterText(t *testing.T) {
	t.Parallel()

	list, _ := newTestList(t, 3, 80, 24)

	send(t, list, keyRunes("w"))
	msgs := send(t, list, keyRunes("?"))

	assert.False(t, list.HelpVisible())
	assert.Equal(t, "w?", list.SearchValue())
	assert.Equal(t, []tea.Msg{SearchChangedMsg{Query: "w?"}}, msgs)
}

func TestListSpiritPicker(t *testing.T) {
	t.Parallel()

	list, _ := newTestList(t, 3, 80, 24)

	send(t, list, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, list.PickerOpen())
	assert.Contains(t, list.View(), "Spirit")

	send(t, list, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, list.PickerOpen(), "esc closes the picker without a change")

	send(t, list, tea.KeyMsg{Type: tea.KeyTab})
	send(t, list, tea.KeyMsg{Type: tea.KeyDown})

	msgs := send(t, list, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, msgs, SpiritChangedMsg{Spirit: "Gin"})
	assert.False(t, list.PickerOpen())
}

func TestCountLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 cocktail", countLabel(1, 1))
	assert.Equal(t, "0 cocktails", countLabel(0, 0))
	assert.Equal(t, "6 of 26 cocktails", countLabel(6, 26))
}

func toAny(msgs []tea.Msg) []any {
	out := make([]any, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, msg)
	}

	return out
}

var _ tea.Model = (*List)(nil)
