package starfield

import (
	"math/rand"

	"stardrag/internal/interaction"
	"stardrag/internal/utils"
)

// Background eases the shared rotation every frame and renders the cloud
// with it. Without a surface it stays disabled and does nothing.
type Background struct {
	state   *interaction.State
	surface Surface
	scene   *Scene
	started bool
}

// NewBackground builds the cloud and camera for a width x height surface.
// A nil surface yields a disabled background.
func NewBackground(state *interaction.State, surface Surface, rng *rand.Rand, width, height int) *Background {
	b := &Background{state: state, surface: surface}
	if surface == nil {
		utils.Debug("Background: no drawing surface, starfield disabled")
		return b
	}

	b.scene = NewScene(NewPointCloud(rng), width, height)
	surface.Resize(width, height)
	utils.Debug("Background: %d stars, aspect %.3f", len(b.scene.Cloud.Points), b.scene.Camera.Aspect)
	return b
}

// Enabled reports whether the background has a surface to draw on.
func (b *Background) Enabled() bool {
	return b.surface != nil
}

// Scene returns the rendered scene, nil when disabled.
func (b *Background) Scene() *Scene {
	return b.scene
}

// Start schedules Step on every frame from now on. It has no stop.
func (b *Background) Start(req Requester) {
	if !b.Enabled() || b.started {
		return
	}
	b.started = true

	var loop func()
	loop = func() {
		req.RequestFrame(loop)
		b.Step()
	}
	req.RequestFrame(loop)
}

// Step eases rotation toward the drag target, orients the cloud, renders.
func (b *Background) Step() {
	if !b.Enabled() {
		return
	}

	b.state.Smooth()
	b.scene.Orientation = Orientation{X: b.state.RotationX, Y: b.state.RotationY}
	b.surface.Render(b.scene)
}

// Resize follows a viewport change. Rotation state is left alone.
func (b *Background) Resize(width, height int) {
	if !b.Enabled() || width <= 0 || height <= 0 {
		return
	}

	b.scene.Camera.SetViewport(width, height)
	b.surface.Resize(width, height)
}
