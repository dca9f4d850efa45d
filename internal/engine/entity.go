package engine

import (
	"fmt"
	"sync/atomic"
)

// Entity is a positioned container of components. Components update and
// draw in the order they were attached.
type Entity struct {
	X, Y float64
	Name string

	// Fixed entities are drawn in screen space, after the camera
	// translation is undone (HUDs, labels).
	Fixed bool

	components []Component
	engine     atomic.Pointer[Engine]
	handle     Handle
	removing   bool
	destroyed  bool
}

// NewEntity creates an entity at (x, y). It does nothing until added to an
// engine with AddGameObject.
func NewEntity(name string, x, y float64) *Entity {
	return &Entity{Name: name, X: x, Y: y}
}

// AddComponent attaches c to the entity and appends it to the update/draw
// order. A component can be attached once, to one entity.
func (e *Entity) AddComponent(c Component) error {
	if c == nil {
		return fmt.Errorf("engine: add nil component to %q: %w", e.Name, ErrInvalidOperation)
	}
	if !c.bind(e) {
		return fmt.Errorf("engine: %s component already attached: %w", c.Kind(), ErrInvalidOperation)
	}
	e.components = append(e.components, c)
	return nil
}

// MustAddComponent is AddComponent for level construction code where a
// failure is a programming error.
func (e *Entity) MustAddComponent(cs ...Component) *Entity {
	for _, c := range cs {
		if err := e.AddComponent(c); err != nil {
			panic(err)
		}
	}
	return e
}

// Update advances every component. It returns immediately while the engine
// is paused, even though the engine also checks, and does nothing for an
// entity that is not registered in an engine.
func (e *Entity) Update(dt float64) {
	eng := e.Engine()
	if eng == nil || eng.State() == StatePaused {
		return
	}
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Draw draws every component, paused or not.
func (e *Entity) Draw(s Surface) {
	for _, c := range e.components {
		c.Draw(s)
	}
}

// GetComponent returns the first attached component of the given kind.
func (e *Entity) GetComponent(kind Kind) (Component, bool) {
	for _, c := range e.components {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// ComponentOf returns the first component of the given kind that is also
// a T.
func ComponentOf[T Component](e *Entity, kind Kind) (T, bool) {
	for _, c := range e.components {
		if c.Kind() != kind {
			continue
		}
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Components returns a copy of the attached components in order.
func (e *Entity) Components() []Component {
	out := make([]Component, len(e.components))
	copy(out, e.components)
	return out
}

// Engine returns the engine the entity is registered in, or nil.
func (e *Entity) Engine() *Engine {
	return e.engine.Load()
}

// Handle returns the entity's handle in its engine. Zero until added.
func (e *Entity) Handle() Handle {
	return e.handle
}

// Removing reports whether the entity is marked for removal.
func (e *Entity) Removing() bool {
	return e.removing
}

// Position returns the entity's world position.
func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}

// Post forwards an intent to the owning engine. It returns false when the
// entity is not registered.
func (e *Entity) Post(in Intent) bool {
	eng := e.Engine()
	if eng == nil {
		return false
	}
	return eng.Post(in)
}

// Remove marks the entity for removal from its engine.
func (e *Entity) Remove() error {
	eng := e.Engine()
	if eng == nil {
		return fmt.Errorf("engine: remove %q: not registered: %w", e.Name, ErrInvalidOperation)
	}
	return eng.RemoveGameObject(e)
}

func (e *Entity) paused() bool {
	eng := e.Engine()
	return eng != nil && eng.State() == StatePaused
}

// destroy detaches the entity from its engine for good and runs component
// Destroy hooks.
func (e *Entity) destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.engine.Store(nil)
	for _, c := range e.components {
		if d, ok := c.(Destroyer); ok {
			d.Destroy()
		}
	}
}
