package engine

// Component is a unit of behavior attached to exactly one Entity.
//
// Implementations embed Base, which supplies the owner back-reference and
// no-op Update/Draw, and add Kind plus whatever hooks they need. Update
// implementations should start with
//
//	if !c.Active() {
//		return
//	}
//
// so a component stays inert while unattached or while the game is paused.
type Component interface {
	Kind() Kind
	Owner() *Entity
	Update(dt float64)
	Draw(s Surface)

	bind(e *Entity) bool
}

// Destroyer is implemented by components that hold resources outside the
// entity (device subscriptions, sounds). Destroy runs once, when the owning
// entity leaves the engine.
type Destroyer interface {
	Destroy()
}

// Base is embedded by every component.
type Base struct {
	owner *Entity
}

// Owner returns the entity this component is attached to, or nil.
func (b *Base) Owner() *Entity {
	return b.owner
}

// Active reports whether the component should advance: it is attached and
// its entity's engine is not paused.
func (b *Base) Active() bool {
	return b.owner != nil && !b.owner.paused()
}

// Update does nothing.
func (b *Base) Update(dt float64) {}

// Draw does nothing.
func (b *Base) Draw(s Surface) {}

// bind sets the owner once; later binds fail.
func (b *Base) bind(e *Entity) bool {
	if b.owner != nil || e == nil {
		return false
	}
	b.owner = e
	return true
}
