package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParts(t *testing.T) {
	h := newHandle(3, 42)
	assert.Equal(t, uint32(3), h.Epoch())
	assert.Equal(t, uint32(42), h.Serial())
	assert.Equal(t, "3:42", h.String())
}

func TestArenaMarkSweepCompact(t *testing.T) {
	a := newArena(1)
	var ents []*Entity
	for _, name := range []string{"a", "b", "c", "d"} {
		e := NewEntity(name, 0, 0)
		e.handle = a.insert(e)
		ents = append(ents, e)
	}

	require.True(t, a.mark(ents[1].handle))
	assert.False(t, a.mark(ents[1].handle), "double mark")
	require.True(t, a.mark(ents[3].handle))
	assert.Equal(t, 4, a.len(), "marked entities stay live until sweep")

	removed := a.sweep()
	assert.Equal(t, []string{"b", "d"}, names(removed))
	assert.Equal(t, 2, a.len())
	assert.Equal(t, []string{"a", "c"}, names(a.entities()))
	assert.Len(t, a.slots, 4, "tombstones stay until compaction")

	_, ok := a.get(ents[1].handle)
	assert.False(t, ok)
	assert.False(t, a.mark(ents[1].handle))

	a.compact()
	assert.Len(t, a.slots, 2)
	got, ok := a.get(ents[2].handle)
	require.True(t, ok)
	assert.Same(t, ents[2], got)
	assert.Equal(t, []string{"a", "c"}, names(a.entities()))
}

func TestArenaEachSkipsInsertedDuringWalk(t *testing.T) {
	a := newArena(1)
	first := NewEntity("first", 0, 0)
	first.handle = a.insert(first)

	var seen []string
	a.each(func(e *Entity) bool {
		seen = append(seen, e.Name)
		late := NewEntity("late", 0, 0)
		late.handle = a.insert(late)
		return true
	})

	assert.Equal(t, []string{"first"}, seen)
	assert.Equal(t, 2, a.len())
}

func TestArenaEachStops(t *testing.T) {
	a := newArena(1)
	for _, name := range []string{"a", "b", "c"} {
		e := NewEntity(name, 0, 0)
		e.handle = a.insert(e)
	}

	var seen []string
	a.each(func(e *Entity) bool {
		seen = append(seen, e.Name)
		return e.Name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestArenaEpochsDoNotCollide(t *testing.T) {
	old := newArena(1)
	e := NewEntity("e", 0, 0)
	h := old.insert(e)

	fresh := newArena(2)
	other := NewEntity("other", 0, 0)
	h2 := fresh.insert(other)

	assert.NotEqual(t, h, h2)
	assert.Equal(t, h.Serial(), h2.Serial())
	_, ok := fresh.get(h)
	assert.False(t, ok)
}

func TestArenaCompactWithoutTombstones(t *testing.T) {
	a := newArena(1)
	e := NewEntity("e", 0, 0)
	e.handle = a.insert(e)

	a.compact()
	got, ok := a.get(e.handle)
	require.True(t, ok)
	assert.Same(t, e, got)
}
