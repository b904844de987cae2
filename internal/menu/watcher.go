// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

// DefaultRevealMargin is how many rows below the viewport the sentinel may sit and still
// count as visible.
const DefaultRevealMargin = 4

// ResultSet identifies one filtered result set. Two filters with the same number of
// matches are still different sets.
type ResultSet struct {
	Search string
	Spirit string
	Total  int
}

// Watcher watches the "loading more" sentinel that follows the last rendered item.
// A subscription is bound to one filtered result set; the owner releases it when leaving
// the list screen or when the result set changes, and subscribes again afterwards.
type Watcher struct {
	margin int
	active bool
	set    ResultSet
	gen    int
}

// NewWatcher creates an unsubscribed watcher. Negative margins are treated as zero.
func NewWatcher(margin int) *Watcher {
	return &Watcher{margin: max(margin, 0)}
}

// Subscribe binds the watcher to set and returns the release func. Any earlier
// subscription is replaced; releasing a replaced subscription has no effect.
func (w *Watcher) Subscribe(set ResultSet) func() {
	w.gen++
	w.active = true
	w.set = set

	gen := w.gen

	return func() {
		if w.gen == gen {
			w.active = false
		}
	}
}

// Active reports whether a subscription is installed.
func (w *Watcher) Active() bool {
	return w.active
}

// BoundTo reports whether the active subscription belongs to set.
func (w *Watcher) BoundTo(set ResultSet) bool {
	return w.active && w.set == set
}

// Intersects reports whether the sentinel at row sentinelRow (in content coordinates) is
// within the margin of a viewport whose first visible row is top and which shows height rows.
func (w *Watcher) Intersects(sentinelRow, top, height int) bool {
	if !w.active || height <= 0 {
		return false
	}

	return sentinelRow >= top-w.margin && sentinelRow < top+height+w.margin
}
