package page

import (
	"stardrag/internal/tilt"
)

// Dispatcher turns a stream of pointer positions into per-element
// enter, move and leave events.
type Dispatcher struct {
	cards []*tilt.Card
	lastX float64
	lastY float64
	seen  bool
}

// NewDispatcher routes pointer positions to the registry's cards.
func NewDispatcher(registry *tilt.Registry) *Dispatcher {
	return &Dispatcher{cards: registry.Cards()}
}

// Pointer reports the pointer at (x, y). Each card whose bounds contain it
// gets Enter on arrival and Move while it keeps moving; cards it left get
// Leave.
func (d *Dispatcher) Pointer(x, y float64) {
	moved := !d.seen || x != d.lastX || y != d.lastY
	d.lastX, d.lastY, d.seen = x, y, true

	for _, card := range d.cards {
		inside := card.Target().Bounds().Contains(x, y)
		switch {
		case inside && !card.Hovering():
			card.Enter(x, y)
		case inside && moved:
			card.Move(x, y)
		case !inside && card.Hovering():
			card.Leave()
		}
	}
}

// PointerGone leaves every hovered card, for a pointer that left the
// window.
func (d *Dispatcher) PointerGone() {
	d.seen = false
	for _, card := range d.cards {
		if card.Hovering() {
			card.Leave()
		}
	}
}
