package input

import "fmt"

// PointerQuery reads the desktop-wide pointer position and whether the
// primary button is held.
type PointerQuery func() (x, y int, button1 bool, err error)

// GlobalSource samples the pointer across the whole desktop and maps it
// into the window, for a window that sits below every other window and
// never receives input events itself.
type GlobalSource struct {
	query  PointerQuery
	origin func() (float64, float64)
	size   func() (int, int)
}

// NewGlobalSource builds a source from a desktop query plus the window's
// screen position and size.
func NewGlobalSource(query PointerQuery, origin func() (float64, float64), size func() (int, int)) *GlobalSource {
	return &GlobalSource{query: query, origin: origin, size: size}
}

// Sample implements Source.
func (g *GlobalSource) Sample() (Sample, error) {
	x, y, down, err := g.query()
	if err != nil {
		return Sample{}, fmt.Errorf("query global pointer: %w", err)
	}

	ox, oy := g.origin()
	w, h := g.size()
	lx := float64(x) - ox
	ly := float64(y) - oy

	return Sample{
		X:      lx,
		Y:      ly,
		Down:   down,
		Inside: lx >= 0 && ly >= 0 && lx < float64(w) && ly < float64(h),
	}, nil
}
