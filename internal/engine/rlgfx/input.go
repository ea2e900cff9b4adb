package rlgfx

import (
	"stardrag/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CursorCue swaps the mouse cursor while a drag is in progress.
type CursorCue struct{}

// SetGrabbing implements interaction.Cue.
func (CursorCue) SetGrabbing(grabbing bool) {
	if grabbing {
		rl.SetMouseCursor(rl.MouseCursorResizeAll)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)
}

// WindowPointer samples the pointer from the window's own input events.
type WindowPointer struct{}

// Sample implements input.Source.
func (WindowPointer) Sample() (input.Sample, error) {
	pos := rl.GetMousePosition()
	return input.Sample{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Down:   rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Inside: rl.IsCursorOnScreen(),
	}, nil
}

// WindowOrigin returns the window's top-left corner on the desktop.
func WindowOrigin() (float64, float64) {
	pos := rl.GetWindowPosition()
	return float64(pos.X), float64(pos.Y)
}

// WindowSize returns the current framebuffer size.
func WindowSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
