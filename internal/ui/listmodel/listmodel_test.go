package listmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id      string
	running bool
}

func newModel(items ...item) Model[item] {
	m := New(func(i item) string { return i.id })
	m.ApplyRefresh(items)
	return m
}

func TestEmptyHasNoSelection(t *testing.T) {
	m := newModel()

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, m.Index())

	m.Move(1)
	m.Move(-5)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestMoveClampsToBounds(t *testing.T) {
	m := newModel(item{id: "a"}, item{id: "b"}, item{id: "c"})

	assert.Equal(t, 0, m.Index())

	m.Move(-10)
	assert.Equal(t, 0, m.Index())

	m.Move(2)
	assert.Equal(t, 2, m.Index())

	m.Move(100)
	assert.Equal(t, 2, m.Index())

	for range 50 {
		m.Move(1)
		m.Move(-3)
	}
	assert.GreaterOrEqual(t, m.Index(), 0)
	assert.Less(t, m.Index(), m.Len())
}

func TestRefreshPreservesSelectionByID(t *testing.T) {
	m := newModel(item{id: "a"}, item{id: "b"}, item{id: "c"})
	m.Move(1)
	assert.Equal(t, "b", m.SelectedID())

	// b moves to the front; selection follows the id, not the position
	m.ApplyRefresh([]item{{id: "b"}, {id: "c"}, {id: "a"}})
	assert.Equal(t, "b", m.SelectedID())
	assert.Equal(t, 0, m.Index())
}

func TestRefreshFallsBackToClampedIndex(t *testing.T) {
	m := newModel(item{id: "a"}, item{id: "b"}, item{id: "c"})
	m.Move(2)
	assert.Equal(t, "c", m.SelectedID())

	m.ApplyRefresh([]item{{id: "a"}, {id: "b"}})
	assert.Equal(t, "b", m.SelectedID())

	m.ApplyRefresh(nil)
	_, ok := m.Selected()
	assert.False(t, ok)

	m.ApplyRefresh([]item{{id: "x"}})
	assert.Equal(t, "x", m.SelectedID())
}

func TestFilterAppliedAtReadTime(t *testing.T) {
	m := newModel(item{id: "a", running: true}, item{id: "b"}, item{id: "c", running: true})

	m.SetFilter(func(i item) bool { return i.running })
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []item{{id: "a", running: true}, {id: "c", running: true}}, m.Visible())

	// stored order untouched once the filter is dropped
	m.SetFilter(nil)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "a", m.Visible()[0].id)
	assert.Equal(t, "b", m.Visible()[1].id)
}

func TestFilterKeepsVisibleSelection(t *testing.T) {
	m := newModel(item{id: "a", running: true}, item{id: "b"}, item{id: "c", running: true})
	m.Move(2)
	assert.Equal(t, "c", m.SelectedID())

	m.SetFilter(func(i item) bool { return i.running })
	assert.Equal(t, "c", m.SelectedID())
	assert.Equal(t, 1, m.Index())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	m := newModel(item{id: "a"}, item{id: "b"})
	m.Update("b", item{id: "b", running: true})

	assert.True(t, m.Visible()[1].running)

	m.Update("nope", item{id: "nope"})
	assert.Equal(t, 2, m.Len())
}

func TestRemoveResolvesSelection(t *testing.T) {
	m := newModel(item{id: "a"}, item{id: "b"}, item{id: "c"})
	m.Move(2)

	m.Remove("c")
	assert.Equal(t, "b", m.SelectedID())

	m.Remove("a")
	m.Remove("b")
	_, ok := m.Selected()
	assert.False(t, ok)
}
