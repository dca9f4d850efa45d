package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name      string
		tx, ty    float64
		expectedX float64
		expectedY float64
	}{
		{"target at origin", 0, 0, 0, 0},
		{"target at viewport center", 40, 12, 0, 0},
		{"target mid-world", 100, 50, 60, 38},
		{"target at far edge", 200, 100, 120, 76},
		{"target beyond far edge", 500, 500, 120, 76},
		{"target near far edge", 190, 95, 120, 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(80, 24)
			cam.SetWorldBounds(200, 100)
			cam.Follow(NewEntity("target", tt.tx, tt.ty))
			cam.Update()

			assert.Equal(t, tt.expectedX, cam.X)
			assert.Equal(t, tt.expectedY, cam.Y)
		})
	}
}

func TestCameraWorldSmallerThanViewport(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.SetWorldBounds(50, 10)
	cam.Follow(NewEntity("target", 40, 8))
	cam.Update()

	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 0.0, cam.Y)
}

func TestCameraUnbounded(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Follow(NewEntity("target", 10, 5))
	cam.Update()

	assert.Equal(t, -30.0, cam.X)
	assert.Equal(t, -7.0, cam.Y)
}

func TestCameraWithoutTargetIsStatic(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.X, cam.Y = 7, 3
	cam.Update()

	x, y := cam.Offset()
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 3.0, y)

	cam.Follow(NewEntity("target", 100, 100))
	cam.Unfollow()
	cam.Update()
	assert.Equal(t, 7.0, cam.X)
}

func TestCameraTracksMovingTarget(t *testing.T) {
	cam := NewCamera(20, 10)
	cam.SetWorldBounds(100, 100)
	target := NewEntity("target", 50, 50)
	cam.Follow(target)

	cam.Update()
	assert.Equal(t, 40.0, cam.X)

	target.X = 60
	cam.Update()
	assert.Equal(t, 50.0, cam.X)
}

func TestCameraTransforms(t *testing.T) {
	cam := NewCamera(20, 10)
	cam.X, cam.Y = 5, 2

	sx, sy := cam.WorldToScreen(15, 7)
	assert.Equal(t, 10.0, sx)
	assert.Equal(t, 5.0, sy)

	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.Equal(t, 15.0, wx)
	assert.Equal(t, 7.0, wy)
}
