package engine

import "github.com/vovakirdan/tui-engine/internal/core"

// Camera turns world coordinates into screen coordinates. With a target it
// keeps the target centered in the viewport, clamped so the view never
// leaves the world bounds.
type Camera struct {
	X, Y          float64
	Width, Height float64

	// World bounds; zero leaves that axis unclamped.
	WorldWidth, WorldHeight float64

	target *Entity
}

// NewCamera creates a camera at the origin with the given viewport size.
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow sets the entity the camera tracks. The camera does not own it.
func (c *Camera) Follow(e *Entity) {
	c.target = e
}

// Unfollow clears the target; the camera stays where it is.
func (c *Camera) Unfollow() {
	c.target = nil
}

// Target returns the followed entity, or nil.
func (c *Camera) Target() *Entity {
	return c.target
}

// SetViewport updates the viewport size, usually after a resize.
func (c *Camera) SetViewport(width, height float64) {
	c.Width, c.Height = width, height
}

// SetWorldBounds sets the clamping area. Zero disables clamping on an axis.
func (c *Camera) SetWorldBounds(width, height float64) {
	c.WorldWidth, c.WorldHeight = width, height
}

// Update recenters on the target. Without a target it does nothing.
func (c *Camera) Update() {
	if c.target == nil {
		return
	}
	c.X = follow(c.target.X, c.Width, c.WorldWidth)
	c.Y = follow(c.target.Y, c.Height, c.WorldHeight)
}

// follow centers pos in a viewport of size view, clamped to [0, world-view].
// A world smaller than the viewport pins the camera to 0.
func follow(pos, view, world float64) float64 {
	v := pos - view/2
	if world <= 0 {
		return v
	}
	return core.ClampF(v, 0, world-view)
}

// Offset returns the camera position, which the engine subtracts from
// world coordinates before drawing.
func (c *Camera) Offset() (float64, float64) {
	return c.X, c.Y
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}

// reset returns the camera to the origin without a target, keeping the
// viewport and bounds.
func (c *Camera) reset() {
	c.X, c.Y = 0, 0
	c.target = nil
}
