package tilt

import (
	"stardrag/internal/interaction"
	"stardrag/internal/utils"
)

const (
	// PagePerspective is the perspective depth of the page container, in px.
	PagePerspective = 1500
	// PageAngleScale converts smoothed radians into container degrees.
	PageAngleScale = 20
)

// Container is the page element that follows the background rotation.
type Container interface {
	SetTransform(t Transform)
}

// GlobalTransform maps the smoothed rotation onto the container. The X axis
// is inverted relative to the background.
func GlobalTransform(state *interaction.State) Transform {
	return Transform{
		Perspective: PagePerspective,
		RotateY:     state.RotationY * PageAngleScale,
		RotateX:     state.RotationX * -PageAngleScale,
		Order:       RotateYX,
	}
}

// Global keeps the page container tilted in step with the background.
type Global struct {
	state     *interaction.State
	container Container
	started   bool
}

// NewGlobal binds container to state. A nil container disables the tilt.
func NewGlobal(state *interaction.State, container Container) *Global {
	if container == nil {
		utils.Debug("Tilt: no page container, global tilt disabled")
	}
	return &Global{state: state, container: container}
}

// Enabled reports whether there is a container to tilt.
func (g *Global) Enabled() bool {
	return g.container != nil
}

// Start applies the transform on every frame from now on.
func (g *Global) Start(req Requester) {
	if !g.Enabled() || g.started {
		return
	}
	g.started = true

	var loop func()
	loop = func() {
		req.RequestFrame(loop)
		g.Update()
	}
	req.RequestFrame(loop)
}

// Update applies the current smoothed rotation once.
func (g *Global) Update() {
	if !g.Enabled() {
		return
	}
	g.container.SetTransform(GlobalTransform(g.state))
}
