package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"stardrag/internal/engine"
	"stardrag/internal/page"
	"stardrag/internal/utils"
)

// dragSteps is how many moves a scripted drag is split into.
const dragSteps = 10

// SnapshotOptions scripts a headless run.
type SnapshotOptions struct {
	Frames int
	DragX  float64
	DragY  float64
}

// ParseDrag reads a "dx,dy" pair.
func ParseDrag(s string) (float64, float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("drag %q: want dx,dy", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("drag %q: %w", s, err)
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("drag %q: %w", s, err)
	}
	return dx, dy, nil
}

// RunSnapshot renders cfg without a window. It presses at the centre of the
// viewport, drags by (DragX, DragY) one frame per step, releases, lets the
// rotation settle for Frames frames and writes the last frame to w as PNG.
func RunSnapshot(cfg Config, opts SnapshotOptions, w io.Writer) (*App, error) {
	surface := engine.NewHeadlessSurface(cfg.Window.Width, cfg.Window.Height)
	defer func() {
		if err := surface.Close(); err != nil {
			utils.Warn("Snapshot: close surface: %v", err)
		}
	}()

	a := New(cfg, surface, nil)
	a.Start()

	x := float64(cfg.Window.Width) / 2
	y := float64(cfg.Window.Height) / 2
	a.Dispatcher.Pointer(x, y)
	a.Tracker.OnPointerDown(x, y)
	for i := 1; i <= dragSteps; i++ {
		step := float64(i) / dragSteps
		a.Tracker.OnPointerMove(x+opts.DragX*step, y+opts.DragY*step)
		a.Scheduler.Tick()
	}
	a.Tracker.OnPointerUp()

	for range max(opts.Frames, 1) {
		a.Scheduler.Tick()
	}
	a.Draw(surface, page.DefaultTheme())

	utils.Info("Snapshot: %d frames, rotation %.3f, %.3f", a.Scheduler.Frame(), a.State.RotationX, a.State.RotationY)
	if err := surface.EncodePNG(w); err != nil {
		return a, err
	}
	return a, nil
}
