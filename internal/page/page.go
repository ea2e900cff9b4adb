package page

import (
	"stardrag/internal/tilt"
)

// Page holds the elements built from a layout.
type Page struct {
	Container *Element
	Elements  []*Element
}

// New builds the page. A container or card with no area is left out, which
// disables whatever would have used it.
func New(layout Layout) *Page {
	p := &Page{}

	if hasArea(layout.Container) {
		p.Container = newElement(layout.Container, KindContainer)
	}
	if layout.Profile != nil && hasArea(*layout.Profile) {
		p.Elements = append(p.Elements, newElement(*layout.Profile, KindProfile))
	}
	for _, cfg := range layout.Cards {
		if hasArea(cfg) {
			p.Elements = append(p.Elements, newElement(cfg, KindCard))
		}
	}
	return p
}

func hasArea(cfg ElementConfig) bool {
	return cfg.Width > 0 && cfg.Height > 0
}

// Targets returns every tiltable element.
func (p *Page) Targets() []tilt.Target {
	targets := make([]tilt.Target, len(p.Elements))
	for i, e := range p.Elements {
		targets[i] = e
	}
	return targets
}

// ContainerTarget returns the container, or a nil interface when there is
// none.
func (p *Page) ContainerTarget() tilt.Container {
	if p.Container == nil {
		return nil
	}
	return p.Container
}

// Find returns the element with id, or nil.
func (p *Page) Find(id string) *Element {
	if p.Container != nil && p.Container.ID == id {
		return p.Container
	}
	for _, e := range p.Elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Relayout moves elements to the boxes layout gives their ids. Elements
// the layout does not name keep their place, and nothing is added.
func (p *Page) Relayout(layout Layout) {
	boxes := map[string]tilt.Rect{layout.Container.ID: layout.Container.Rect()}
	if layout.Profile != nil {
		boxes[layout.Profile.ID] = layout.Profile.Rect()
	}
	for _, cfg := range layout.Cards {
		boxes[cfg.ID] = cfg.Rect()
	}

	if p.Container != nil {
		if r, ok := boxes[p.Container.ID]; ok {
			p.Container.Rect = r
		}
	}
	for _, e := range p.Elements {
		if r, ok := boxes[e.ID]; ok {
			e.Rect = r
		}
	}
}
