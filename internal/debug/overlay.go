package debug

import (
	"fmt"

	"stardrag/internal/interaction"
	"stardrag/internal/page"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay shows the drag state and the layout boxes used for hit-testing.
type Overlay struct {
	ShowBoundingBoxes bool

	fontHeight int
	lineHeight int
}

func NewOverlay() *Overlay {
	return &Overlay{
		ShowBoundingBoxes: true,
		fontHeight:        16,
		lineHeight:        20,
	}
}

// Update handles the overlay's own keys. B toggles the boxes.
func (d *Overlay) Update() {
	if rl.IsKeyPressed(rl.KeyB) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}
}

// Draw paints the overlay on top of the frame.
func (d *Overlay) Draw(state *interaction.State, p *page.Page) {
	if d.ShowBoundingBoxes {
		d.drawBoundingBoxes(p)
	}

	lines := []string{
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Dragging: %v", state.Dragging),
		fmt.Sprintf("Rotation: %.3f, %.3f", state.RotationX, state.RotationY),
		fmt.Sprintf("Target:   %.3f, %.3f", state.TargetRotationX, state.TargetRotationY),
	}
	for _, e := range p.Elements {
		if e.Tilting() {
			lines = append(lines, fmt.Sprintf("%s: %s", e.ID, e.Style()))
		}
	}

	boxHeight := int32(len(lines)*d.lineHeight + 10)
	rl.DrawRectangle(5, 5, 460, boxHeight, rl.NewColor(0, 0, 0, 160))
	for i, line := range lines {
		rl.DrawText(line, 12, int32(10+i*d.lineHeight), int32(d.fontHeight), rl.White)
	}
}

func (d *Overlay) drawBoundingBoxes(p *page.Page) {
	if p.Container != nil {
		d.drawBox(p.Container, rl.NewColor(0, 255, 255, 100))
	}
	for _, e := range p.Elements {
		col := rl.NewColor(0, 255, 0, 255)
		if e.Tilting() {
			col = rl.NewColor(255, 255, 0, 255)
		}
		d.drawBox(e, col)
	}
}

func (d *Overlay) drawBox(e *page.Element, col rl.Color) {
	r := e.Rect
	rl.DrawRectangleLines(int32(r.Left), int32(r.Top), int32(r.Width), int32(r.Height), col)

	c := r.Center()
	// centre point
	rl.DrawRectangle(int32(c[0]-2), int32(c[1]-2), 4, 4, rl.Red)
}
