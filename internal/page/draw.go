package page

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Canvas is a 2-D drawing target for the page.
type Canvas interface {
	FillPolygon(points []mgl64.Vec2, col color.RGBA)
	StrokePolygon(points []mgl64.Vec2, width float64, col color.RGBA)
	Label(text string, x, y float64, size int, col color.RGBA)
}

// Theme colours the page.
type Theme struct {
	Panel       color.RGBA
	PanelBorder color.RGBA
	Card        color.RGBA
	CardBorder  color.RGBA
	Hover       color.RGBA
	Text        color.RGBA
	LabelSize   int
}

// DefaultTheme is a dark translucent glass look.
func DefaultTheme() Theme {
	return Theme{
		Panel:       color.RGBA{R: 10, G: 18, B: 32, A: 110},
		PanelBorder: color.RGBA{R: 0, G: 212, B: 255, A: 90},
		Card:        color.RGBA{R: 16, G: 28, B: 48, A: 200},
		CardBorder:  color.RGBA{R: 0, G: 212, B: 255, A: 140},
		Hover:       color.RGBA{R: 120, G: 235, B: 255, A: 230},
		Text:        color.RGBA{R: 230, G: 240, B: 255, A: 255},
		LabelSize:   20,
	}
}

// Draw paints the container and every element. Elements are projected
// through their own transform first, then flattened through the
// container's.
func (p *Page) Draw(canvas Canvas, theme Theme) {
	if p.Container != nil {
		outline := p.Container.Transform().Corners(p.Container.Rect)
		canvas.FillPolygon(outline[:], theme.Panel)
		canvas.StrokePolygon(outline[:], 1, theme.PanelBorder)
	}

	for _, e := range p.Elements {
		outline := p.project(e)

		border := theme.CardBorder
		width := 1.0
		if e.Tilting() {
			border = theme.Hover
			width = 2
		}
		canvas.FillPolygon(outline, theme.Card)
		canvas.StrokePolygon(outline, width, border)

		if e.Label != "" {
			centre := p.toPage(e.Rect.Center())
			canvas.Label(e.Label, centre[0], centre[1], theme.LabelSize, theme.Text)
		}
	}
}

// project returns e's outline in page space.
func (p *Page) project(e *Element) []mgl64.Vec2 {
	corners := e.Transform().Corners(e.Rect)
	outline := make([]mgl64.Vec2, len(corners))
	for i, c := range corners {
		outline[i] = p.toPage(c)
	}
	return outline
}

// toPage applies the container transform, if any.
func (p *Page) toPage(pt mgl64.Vec2) mgl64.Vec2 {
	if p.Container == nil {
		return pt
	}
	return p.Container.Transform().Apply(pt, p.Container.Rect.Center())
}
