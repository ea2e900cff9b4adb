package starfield

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Scene is everything a surface needs to draw one background frame.
type Scene struct {
	Cloud       *PointCloud
	Camera      Camera
	Orientation Orientation

	world []mgl64.Vec3
}

// NewScene wraps cloud with a camera for the given viewport.
func NewScene(cloud *PointCloud, width, height int) *Scene {
	return &Scene{
		Cloud:  cloud,
		Camera: NewCamera(width, height),
		world:  make([]mgl64.Vec3, len(cloud.Points)),
	}
}

// Model returns the rotation matrix for the current orientation.
func (s *Scene) Model() mgl64.Mat3 {
	return mgl64.Rotate3DX(s.Orientation.X).Mul3(mgl64.Rotate3DY(s.Orientation.Y))
}

// WorldPoints returns the cloud rotated by the current orientation. The
// returned slice is reused by the next call.
func (s *Scene) WorldPoints() []mgl64.Vec3 {
	model := s.Model()
	for i, p := range s.Cloud.Points {
		s.world[i] = model.Mul3x1(p)
	}
	return s.world
}
