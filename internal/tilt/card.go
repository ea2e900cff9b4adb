package tilt

import (
	"stardrag/internal/interaction"
)

const (
	// CardPerspective is the perspective depth of a hovered card, in px.
	CardPerspective = 1000
	// CardMaxAngle is the tilt in degrees with the pointer on an edge.
	CardMaxAngle = 10
	// CardHoverScale enlarges a hovered card slightly.
	CardHoverScale = 1.02
)

// Target is anything a tilt can be applied to.
type Target interface {
	Bounds() Rect
	SetTransform(t Transform)
	SetHoverClass(on bool)
}

// Requester schedules a callback for the next frame.
type Requester interface {
	RequestFrame(fn func())
}

// ResetTransform is the flat, unscaled card transform.
func ResetTransform() Transform {
	return Transform{Perspective: CardPerspective, Scale: 1}
}

// CardTransform tilts a card toward the pointer at (x, y). The pointer's
// offset from the centre is normalised by half the card's size, so an edge
// gives CardMaxAngle.
func CardTransform(bounds Rect, x, y float64) Transform {
	t := Transform{Perspective: CardPerspective, Scale: CardHoverScale}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return t
	}

	centerX := bounds.Width / 2
	centerY := bounds.Height / 2
	elementX := x - bounds.Left
	elementY := y - bounds.Top

	t.RotateX = ((elementY - centerY) / centerY) * -CardMaxAngle
	t.RotateY = ((elementX - centerX) / centerX) * CardMaxAngle
	return t
}

// Card runs the hover tilt for one target.
type Card struct {
	target Target
	state  *interaction.State
	req    Requester

	bounds    Rect
	mouseX    float64
	mouseY    float64
	hovering  bool
	scheduled bool
}

// NewCard binds target to the shared drag flag in state.
func NewCard(target Target, state *interaction.State, req Requester) *Card {
	return &Card{target: target, state: state, req: req}
}

// Target returns the element this card tilts.
func (c *Card) Target() Target {
	return c.target
}

// Hovering reports whether the pointer is over the card.
func (c *Card) Hovering() bool {
	return c.hovering
}

// Enter starts tilting. Bounds are captured once per hover.
func (c *Card) Enter(x, y float64) {
	c.hovering = true
	c.bounds = c.target.Bounds()
	c.mouseX = x
	c.mouseY = y
	c.target.SetHoverClass(true)

	if !c.scheduled {
		c.scheduled = true
		c.req.RequestFrame(c.update)
	}
}

// Move records the pointer for the next frame.
func (c *Card) Move(x, y float64) {
	c.mouseX = x
	c.mouseY = y
}

// Leave stops tilting and flattens the card.
func (c *Card) Leave() {
	c.hovering = false
	c.target.SetHoverClass(false)
	c.target.SetTransform(ResetTransform())
}

func (c *Card) update() {
	if !c.hovering {
		c.scheduled = false
		return
	}

	// A page drag owns the pointer: keep polling but leave the last
	// transform in place.
	if !c.state.Dragging {
		c.target.SetTransform(CardTransform(c.bounds, c.mouseX, c.mouseY))
	}
	c.req.RequestFrame(c.update)
}
