package page

import (
	"stardrag/internal/tilt"
)

// Kind tells the drawer how to style an element.
type Kind int

const (
	KindContainer Kind = iota
	KindProfile
	KindCard
)

// Element is one box on the page. It carries the inline transform string
// and the hover class a stylesheet would see.
type Element struct {
	ID    string
	Label string
	Kind  Kind
	Rect  tilt.Rect

	transform tilt.Transform
	style     string
	tilting   bool
}

func newElement(cfg ElementConfig, kind Kind) *Element {
	e := &Element{ID: cfg.ID, Label: cfg.Label, Kind: kind, Rect: cfg.Rect()}
	if kind == KindContainer {
		e.transform = tilt.Transform{Perspective: tilt.PagePerspective, Order: tilt.RotateYX}
	} else {
		e.transform = tilt.ResetTransform()
	}
	return e
}

// Bounds implements tilt.Target.
func (e *Element) Bounds() tilt.Rect {
	return e.Rect
}

// SetTransform implements tilt.Target and tilt.Container.
func (e *Element) SetTransform(t tilt.Transform) {
	e.transform = t
	e.style = t.String()
}

// SetHoverClass implements tilt.Target.
func (e *Element) SetHoverClass(on bool) {
	e.tilting = on
}

// Transform returns the last applied transform.
func (e *Element) Transform() tilt.Transform {
	return e.transform
}

// Style returns the inline transform string, empty until one is applied.
func (e *Element) Style() string {
	return e.style
}

// Tilting reports whether the hover class is set.
func (e *Element) Tilting() bool {
	return e.tilting
}
