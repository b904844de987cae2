// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package menu

// DefaultPageSize is how many recipes are shown before the first reveal, and how many
// each reveal adds.
const DefaultPageSize = 6

// Pager tracks how much of the filtered list is visible. The zero value is not usable;
// create one with NewPager.
type Pager struct {
	pageSize int
	visible  int
}

// NewPager returns a pager showing one page. Non-positive sizes fall back to DefaultPageSize.
func NewPager(pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return Pager{pageSize: pageSize, visible: pageSize}
}

// Visible returns the current visible count. It can exceed the filtered length;
// Page clamps it.
func (p Pager) Visible() int {
	return p.visible
}

// HasMore reports whether a filtered list of length total has items past the visible prefix.
func (p Pager) HasMore(total int) bool {
	return p.visible < total
}

// Reveal shows another page, never more than total. Once everything is visible it is a no-op,
// so the visible count never shrinks.
func (p Pager) Reveal(total int) Pager {
	if !p.HasMore(total) {
		return p
	}

	p.visible = min(p.visible+p.pageSize, total)

	return p
}

// Reset goes back to a single page.
func (p Pager) Reset() Pager {
	p.visible = p.pageSize

	return p
}

// Page returns the prefix of items of length min(visible, len(items)).
func Page[T any](items []T, visible int) []T {
	if visible < 0 {
		visible = 0
	}

	return items[:min(visible, len(items))]
}
