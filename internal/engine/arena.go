package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Handle is a stable reference to an entity in an engine. The upper 32
// bits hold the arena epoch (bumped on every Reset), the lower 32 bits a
// serial number, so handles from before a reset never resolve.
type Handle uint64

func newHandle(epoch, serial uint32) Handle {
	return Handle(uint64(epoch)<<32 | uint64(serial))
}

// Epoch returns the arena generation the handle was issued in.
func (h Handle) Epoch() uint32 {
	return uint32(h >> 32)
}

// Serial returns the per-epoch serial number.
func (h Handle) Serial() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Epoch(), h.Serial())
}

type slot struct {
	entity *Entity
	dead   bool // tombstone: removed, awaiting compaction
}

// arena stores live entities densely in insertion order.
//
// Removal is two-step: mark flags an entity as pending (it still takes part
// in the current update pass), sweep turns pending entities into
// tombstones at the end of the pass, and compact squeezes tombstones out at
// the start of the next pass. Iteration skips tombstones, so slots never
// shift while something is iterating.
type arena struct {
	epoch      uint32
	serial     uint32
	slots      []slot
	index      *intmap.Map[Handle, int]
	pending    []Handle
	tombstones int
}

func newArena(epoch uint32) *arena {
	return &arena{
		epoch: epoch,
		index: intmap.New[Handle, int](64),
	}
}

func (a *arena) insert(e *Entity) Handle {
	a.serial++
	h := newHandle(a.epoch, a.serial)
	a.slots = append(a.slots, slot{entity: e})
	a.index.Put(h, len(a.slots)-1)
	return h
}

func (a *arena) get(h Handle) (*Entity, bool) {
	i, ok := a.index.Get(h)
	if !ok || a.slots[i].dead {
		return nil, false
	}
	return a.slots[i].entity, true
}

// mark flags an entity for removal. It returns false for unknown handles
// and entities already marked.
func (a *arena) mark(h Handle) bool {
	e, ok := a.get(h)
	if !ok || e.removing {
		return false
	}
	e.removing = true
	a.pending = append(a.pending, h)
	return true
}

// sweep tombstones every pending entity and returns them in the order they
// were marked.
func (a *arena) sweep() []*Entity {
	if len(a.pending) == 0 {
		return nil
	}
	removed := make([]*Entity, 0, len(a.pending))
	for _, h := range a.pending {
		i, ok := a.index.Get(h)
		if !ok {
			continue
		}
		a.slots[i].dead = true
		a.index.Del(h)
		a.tombstones++
		removed = append(removed, a.slots[i].entity)
	}
	a.pending = a.pending[:0]
	return removed
}

// compact drops tombstones, keeping the survivors in insertion order.
func (a *arena) compact() {
	if a.tombstones == 0 {
		return
	}
	live := a.slots[:0]
	for _, s := range a.slots {
		if s.dead {
			continue
		}
		a.index.Put(s.entity.handle, len(live))
		live = append(live, s)
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(live); i < len(a.slots); i++ {
		a.slots[i] = slot{}
	}
	a.slots = live
	a.tombstones = 0
}

// each calls fn for every live entity in insertion order until fn returns
// false. Entities inserted during the walk are not visited.
func (a *arena) each(fn func(*Entity) bool) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		if a.slots[i].dead {
			continue
		}
		if !fn(a.slots[i].entity) {
			return
		}
	}
}

func (a *arena) len() int {
	return len(a.slots) - a.tombstones
}

func (a *arena) entities() []*Entity {
	out := make([]*Entity, 0, a.len())
	a.each(func(e *Entity) bool {
		out = append(out, e)
		return true
	})
	return out
}
