// Package listmodel implements an ordered list of summaries with a
// selection cursor that survives wholesale refreshes.
package listmodel

import (
	"github.com/samber/lo"
)

// Model holds items in the order the poller delivered them, a selection
// cursor over the visible (filtered) items and an optional read-time filter.
type Model[T any] struct {
	id     func(T) string
	items  []T
	filter func(T) bool
	cursor int // index into Visible(), -1 when empty
}

func New[T any](id func(T) string) Model[T] {
	return Model[T]{id: id, cursor: -1}
}

// Visible returns the items passing the filter, stored order preserved.
func (m *Model[T]) Visible() []T {
	if m.filter == nil {
		return m.items
	}
	return lo.Filter(m.items, func(item T, _ int) bool { return m.filter(item) })
}

func (m *Model[T]) Len() int {
	return len(m.Visible())
}

// Selected returns the item under the cursor, or false when the list is empty.
func (m *Model[T]) Selected() (T, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[m.cursor], true
}

func (m *Model[T]) SelectedID() string {
	if item, ok := m.Selected(); ok {
		return m.id(item)
	}
	return ""
}

// Index returns the cursor position within the visible items, -1 when empty.
func (m *Model[T]) Index() int {
	return m.cursor
}

// Move shifts the cursor by delta, clamped to the visible bounds.
func (m *Model[T]) Move(delta int) {
	visible := m.Visible()
	if len(visible) == 0 {
		m.cursor = -1
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(visible)-1)
}

// ApplyRefresh replaces the contents wholesale. Selection is remapped by id;
// if the previously selected id is gone the cursor falls back to its clamped
// position, and to none when the list is empty.
func (m *Model[T]) ApplyRefresh(items []T) {
	prev := m.SelectedID()
	m.items = items
	m.resolveCursor(prev)
}

// SetFilter installs (or clears, with nil) the read-time filter, keeping the
// selected item selected when it remains visible.
func (m *Model[T]) SetFilter(filter func(T) bool) {
	prev := m.SelectedID()
	m.filter = filter
	m.resolveCursor(prev)
}

// Update replaces the item with the given id in place. Unknown ids are
// ignored; ordering does not change.
func (m *Model[T]) Update(id string, item T) {
	for i := range m.items {
		if m.id(m.items[i]) == id {
			m.items[i] = item
			return
		}
	}
}

// Remove drops the item with the given id and re-resolves the selection.
func (m *Model[T]) Remove(id string) {
	prev := m.SelectedID()
	m.items = lo.Filter(m.items, func(item T, _ int) bool { return m.id(item) != id })
	m.resolveCursor(prev)
}

func (m *Model[T]) resolveCursor(prevID string) {
	visible := m.Visible()
	if len(visible) == 0 {
		m.cursor = -1
		return
	}
	if prevID != "" {
		if _, pos, ok := lo.FindIndexOf(visible, func(item T) bool { return m.id(item) == prevID }); ok {
			m.cursor = pos
			return
		}
	}
	m.cursor = clamp(m.cursor, 0, len(visible)-1)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
