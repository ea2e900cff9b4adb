package input

// Sample is the pointer as seen at one frame.
type Sample struct {
	X, Y   float64
	Down   bool // primary button held
	Inside bool // pointer over the drawing surface
}

// Source yields one pointer sample per frame.
type Source interface {
	Sample() (Sample, error)
}

// Handler receives drag gestures. *interaction.Tracker satisfies it.
type Handler interface {
	OnPointerDown(x, y float64)
	OnPointerMove(x, y float64)
	OnPointerUp()
}

// Hover receives pointer positions for element hover tracking.
// *page.Dispatcher satisfies it.
type Hover interface {
	Pointer(x, y float64)
	PointerGone()
}

// Poller samples a source once per frame and turns the difference from
// the previous sample into pointer events.
type Poller struct {
	source  Source
	handler Handler
	hover   Hover

	last   Sample
	primed bool
}

// NewPoller wires source to handler and hover. hover may be nil.
func NewPoller(source Source, handler Handler, hover Hover) *Poller {
	return &Poller{source: source, handler: handler, hover: hover}
}

// SetSource swaps the source, keeping the previous sample so a held
// button is not reported twice.
func (p *Poller) SetSource(source Source) {
	p.source = source
}

// Poll reads one sample and dispatches it: button edges first, then
// movement, then hover.
func (p *Poller) Poll() error {
	s, err := p.source.Sample()
	if err != nil {
		return err
	}

	last := p.last
	if !p.primed {
		last = Sample{X: s.X, Y: s.Y}
		p.primed = true
	}

	switch {
	case s.Down && !last.Down:
		p.handler.OnPointerDown(s.X, s.Y)
	case !s.Down && last.Down:
		p.handler.OnPointerUp()
	case s.X != last.X || s.Y != last.Y:
		p.handler.OnPointerMove(s.X, s.Y)
	}

	if p.hover != nil {
		if s.Inside {
			p.hover.Pointer(s.X, s.Y)
		} else if last.Inside {
			p.hover.PointerGone()
		}
	}

	p.last = s
	return nil
}
