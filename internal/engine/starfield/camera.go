package starfield

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at the origin down -Z.
type Camera struct {
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3
}

// NewCamera returns the background camera for a width x height viewport.
func NewCamera(width, height int) Camera {
	cam := Camera{
		FOV:      75,
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
		Position: mgl64.Vec3{0, 0, 4},
	}
	cam.SetViewport(width, height)
	return cam
}

// SetViewport recomputes the aspect ratio. Degenerate sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// ViewProjection returns projection * view.
func (c Camera) ViewProjection() mgl64.Mat4 {
	projection := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	return projection.Mul4(view)
}

// Project maps a world point to pixel coordinates in a width x height
// viewport. ok is false for points outside the clip volume.
func Project(viewProjection mgl64.Mat4, p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	clip := viewProjection.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}

	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	ndcZ := clip[2] / clip[3]
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 || ndcZ < -1 || ndcZ > 1 {
		return 0, 0, false
	}

	x = (ndcX + 1) / 2 * float64(width)
	y = (1 - ndcY) / 2 * float64(height)
	return x, y, true
}
