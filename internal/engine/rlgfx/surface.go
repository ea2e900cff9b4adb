// Package rlgfx draws the background and the page through raylib. It needs
// an open window, so it is kept apart from the headless packages.
package rlgfx

import (
	"image/color"

	"stardrag/internal/engine/starfield"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface renders the star cloud as 3-D points.
type Surface struct {
	Background    color.RGBA
	width, height int
}

// NewSurface returns a surface for a window of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Background: color.RGBA{R: 2, G: 4, B: 12, A: 255},
		width:      width,
		height:     height,
	}
}

// Render implements starfield.Surface. It must run between BeginDrawing and
// EndDrawing.
func (s *Surface) Render(scene *starfield.Scene) {
	rl.ClearBackground(s.Background)

	camera := rl.Camera3D{
		Position:   vec3(scene.Camera.Position[0], scene.Camera.Position[1], scene.Camera.Position[2]),
		Target:     vec3(0, 0, 0),
		Up:         vec3(0, 1, 0),
		Fovy:       float32(scene.Camera.FOV),
		Projection: rl.CameraPerspective,
	}

	material := scene.Cloud.Material
	tint := rl.Fade(material.Color, float32(material.Opacity))

	rl.BeginMode3D(camera)
	if material.Additive {
		rl.BeginBlendMode(rl.BlendAdditive)
	}
	for _, p := range scene.WorldPoints() {
		rl.DrawPoint3D(vec3(p[0], p[1], p[2]), tint)
	}
	if material.Additive {
		rl.EndBlendMode()
	}
	rl.EndMode3D()
}

// Resize implements starfield.Surface. Raylib owns the framebuffer, so
// only the size is kept.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
}

// Size returns the last size the surface was given.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func vec3(x, y, z float64) rl.Vector3 {
	return rl.NewVector3(float32(x), float32(y), float32(z))
}
