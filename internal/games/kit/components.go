// Package kit holds gameplay components shared by the bundled levels:
// drawing primitives, box colliders and a simple gravity body.
package kit

import (
	"math"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
)

// Sprite draws an image at the owner's position, or a filled rectangle
// when the image is unavailable.
type Sprite struct {
	engine.Base
	Image    *core.Image
	W, H     float64
	Fallback core.Fill
}

func (s *Sprite) Kind() engine.Kind { return engine.KindSprite }

func (s *Sprite) Draw(dst engine.Surface) {
	owner := s.Owner()
	if owner == nil {
		return
	}
	if s.Image != nil {
		dst.DrawImage(s.Image, owner.X, owner.Y)
		return
	}
	dst.FillRect(owner.X, owner.Y, s.W, s.H, s.Fallback)
}

// Shape is a solid filled rectangle (platforms, walls).
type Shape struct {
	engine.Base
	W, H float64
	Fill core.Fill
}

func (s *Shape) Kind() engine.Kind { return engine.KindShape }

func (s *Shape) Draw(dst engine.Surface) {
	if owner := s.Owner(); owner != nil {
		dst.FillRect(owner.X, owner.Y, s.W, s.H, s.Fill)
	}
}

// Text draws one line of text at the owner's position.
type Text struct {
	engine.Base
	Text  string
	Color core.Color
	Align core.Align
}

func (t *Text) Kind() engine.Kind { return engine.KindText }

// SetText replaces the displayed text.
func (t *Text) SetText(s string) {
	t.Text = s
}

func (t *Text) Draw(dst engine.Surface) {
	if owner := t.Owner(); owner != nil && t.Text != "" {
		dst.FillText(owner.X, owner.Y, t.Text, t.Color, t.Align)
	}
}

// Collider gives an entity a box for overlap tests. Solid colliders block
// bodies.
type Collider struct {
	engine.Base
	W, H  float64
	Solid bool
}

func (c *Collider) Kind() engine.Kind { return engine.KindCollider }

// Bounds returns the collider box in world coordinates.
func (c *Collider) Bounds() core.Rect {
	owner := c.Owner()
	if owner == nil {
		return core.Rect{}
	}
	return core.NewRect(owner.X, owner.Y, c.W, c.H)
}

// ColliderOf returns an entity's collider, if any.
func ColliderOf(e *engine.Entity) (*Collider, bool) {
	return engine.ComponentOf[*Collider](e, engine.KindCollider)
}

// Overlaps reports whether two entities' colliders intersect.
func Overlaps(a, b *engine.Entity) bool {
	ca, ok := ColliderOf(a)
	if !ok {
		return false
	}
	cb, ok := ColliderOf(b)
	if !ok {
		return false
	}
	return ca.Bounds().Intersects(cb.Bounds())
}

// Body integrates velocity under gravity and resolves collisions against
// solid colliders, one axis at a time.
type Body struct {
	engine.Base
	VX, VY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     bool
}

func (b *Body) Kind() engine.Kind { return engine.KindBody }

func (b *Body) Update(dt float64) {
	if !b.Active() {
		return
	}
	owner := b.Owner()
	self, ok := ColliderOf(owner)

	b.VY += b.Gravity * dt
	if b.MaxFallSpeed > 0 && b.VY > b.MaxFallSpeed {
		b.VY = b.MaxFallSpeed
	}

	if !ok {
		owner.X += b.VX * dt
		owner.Y += b.VY * dt
		return
	}

	// Move at most one cell per step so thin ledges cannot be skipped.
	steps := int(math.Ceil(math.Max(math.Abs(b.VX), math.Abs(b.VY)) * dt))
	if steps < 1 {
		steps = 1
	}
	step := dt / float64(steps)
	solids := b.solids()
	b.OnGround = false
	for range steps {
		b.move(owner, self, solids, step)
	}
}

func (b *Body) move(owner *engine.Entity, self *Collider, solids []core.Rect, dt float64) {
	owner.X += b.VX * dt
	for _, s := range solids {
		if !self.Bounds().Intersects(s) {
			continue
		}
		if b.VX > 0 {
			owner.X = s.X - self.W
		} else if b.VX < 0 {
			owner.X = s.Right()
		}
		b.VX = 0
	}

	owner.Y += b.VY * dt
	for _, s := range solids {
		if !self.Bounds().Intersects(s) {
			continue
		}
		if b.VY > 0 {
			owner.Y = s.Y - self.H
			b.OnGround = true
		} else if b.VY < 0 {
			owner.Y = s.Bottom()
		}
		b.VY = 0
	}
}

// solids collects the boxes of every other solid collider in the engine.
func (b *Body) solids() []core.Rect {
	owner := b.Owner()
	eng := owner.Engine()
	if eng == nil {
		return nil
	}
	var out []core.Rect
	for _, e := range eng.GameObjects() {
		if e == owner {
			continue
		}
		if c, ok := ColliderOf(e); ok && c.Solid {
			out = append(out, c.Bounds())
		}
	}
	return out
}
