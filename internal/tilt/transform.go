package tilt

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationOrder is the order the two rotate functions appear in a
// transform list.
type RotationOrder int

const (
	RotateXY RotationOrder = iota
	RotateYX
)

// Transform is a CSS-style 3-D transform list:
// perspective, two rotations in Order, and an optional uniform scale.
type Transform struct {
	Perspective float64 // px
	RotateX     float64 // deg
	RotateY     float64 // deg
	Scale       float64 // zero omits the scale term
	Order       RotationOrder
}

// String renders the transform the way an inline style would carry it.
func (t Transform) String() string {
	var b strings.Builder
	b.WriteString("perspective(")
	b.WriteString(formatNumber(t.Perspective))
	b.WriteString("px) ")

	rx := "rotateX(" + formatNumber(t.RotateX) + "deg)"
	ry := "rotateY(" + formatNumber(t.RotateY) + "deg)"
	if t.Order == RotateYX {
		b.WriteString(ry + " " + rx)
	} else {
		b.WriteString(rx + " " + ry)
	}

	if t.Scale != 0 {
		b.WriteString(" scale(")
		b.WriteString(formatNumber(t.Scale))
		b.WriteString(")")
	}
	return b.String()
}

// Matrix returns the transform list multiplied left to right, in a
// y-down coordinate space centred on the transform origin.
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Ident4()
	if t.Perspective > 0 {
		m[11] = -1 / t.Perspective
	}

	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(t.RotateX))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(t.RotateY))
	if t.Order == RotateYX {
		m = m.Mul4(ry).Mul4(rx)
	} else {
		m = m.Mul4(rx).Mul4(ry)
	}

	if t.Scale != 0 {
		m = m.Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
	}
	return m
}

// Apply maps p through the transform around origin, flattening the result
// back onto the page plane.
func (t Transform) Apply(p, origin mgl64.Vec2) mgl64.Vec2 {
	local := mgl64.Vec4{p[0] - origin[0], p[1] - origin[1], 0, 1}
	v := t.Matrix().Mul4x1(local)
	if v[3] <= 0 {
		return p
	}
	return mgl64.Vec2{origin[0] + v[0]/v[3], origin[1] + v[1]/v[3]}
}

// Corners returns r's corners, clockwise from top-left, transformed
// around r's centre.
func (t Transform) Corners(r Rect) [4]mgl64.Vec2 {
	centre := r.Center()
	corners := r.Corners()
	m := t.Matrix()
	for i, c := range corners {
		local := mgl64.Vec4{c[0] - centre[0], c[1] - centre[1], 0, 1}
		v := m.Mul4x1(local)
		if v[3] <= 0 {
			continue
		}
		corners[i] = mgl64.Vec2{centre[0] + v[0]/v[3], centre[1] + v[1]/v[3]}
	}
	return corners
}

// formatNumber prints like a JavaScript template literal: shortest
// round-trip digits, no negative zero, and exponent form below 1e-6 or
// from 1e21 up.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rect is an axis-aligned box in page pixels.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center returns the box centre.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Contains reports whether (x, y) lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Corners returns the four corners clockwise from top-left.
func (r Rect) Corners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		{r.Left, r.Top},
		{r.Left + r.Width, r.Top},
		{r.Left + r.Width, r.Top + r.Height},
		{r.Left, r.Top + r.Height},
	}
}
