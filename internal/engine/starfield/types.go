package starfield

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// StarCount is the number of points in the cloud.
	StarCount = 2000
	// Spread is the edge length of the cube the stars are scattered in.
	Spread = 20.0
)

// Material describes how every star in the cloud is drawn.
type Material struct {
	Size     float64
	Color    color.RGBA
	Opacity  float64
	Additive bool
}

// DefaultMaterial is a small cyan additive point.
func DefaultMaterial() Material {
	return Material{
		Size:     0.03,
		Color:    color.RGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0xff},
		Opacity:  0.9,
		Additive: true,
	}
}

// PointCloud is the fixed set of star positions in model space.
type PointCloud struct {
	Points   []mgl64.Vec3
	Material Material
}

// Orientation is the cloud rotation in radians, Euler order XYZ.
type Orientation struct {
	X float64
	Y float64
}

// Requester schedules a callback for the next frame.
type Requester interface {
	RequestFrame(fn func())
}

// Surface is the drawing target the background renders onto.
type Surface interface {
	Render(scene *Scene)
	Resize(width, height int)
}
