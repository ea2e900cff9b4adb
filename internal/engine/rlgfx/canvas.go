package rlgfx

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Canvas implements page.Canvas with raylib 2-D primitives.
type Canvas struct{}

// FillPolygon fills a convex polygon as a triangle fan.
func (Canvas) FillPolygon(points []mgl64.Vec2, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	// raylib culls clockwise triangles
	ordered := points
	if signedArea(points) > 0 {
		ordered = make([]mgl64.Vec2, len(points))
		for i, p := range points {
			ordered[len(points)-1-i] = p
		}
	}
	for i := 1; i < len(ordered)-1; i++ {
		rl.DrawTriangle(vec2(ordered[0]), vec2(ordered[i]), vec2(ordered[i+1]), col)
	}
}

// StrokePolygon outlines a closed polygon.
func (Canvas) StrokePolygon(points []mgl64.Vec2, width float64, col color.RGBA) {
	for i := range points {
		next := points[(i+1)%len(points)]
		rl.DrawLineEx(vec2(points[i]), vec2(next), float32(width), col)
	}
}

// Label draws text centred on (x, y) in the default raylib font.
func (Canvas) Label(text string, x, y float64, size int, col color.RGBA) {
	w := rl.MeasureText(text, int32(size))
	rl.DrawText(text, int32(x)-w/2, int32(y)-int32(size)/2, int32(size), col)
}

// signedArea is positive for clockwise winding in y-down screen space.
func signedArea(points []mgl64.Vec2) float64 {
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p[0]*q[1] - q[0]*p[1]
	}
	return area / 2
}

func vec2(p mgl64.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(p[0]), float32(p[1]))
}
