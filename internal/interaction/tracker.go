package interaction

// Cue receives the visual "grabbing" signal while a drag is active.
type Cue interface {
	SetGrabbing(grabbing bool)
}

// Tracker turns pointer down/move/up into clamped target rotation.
type Tracker struct {
	state *State
	cue   Cue
}

// NewTracker binds a tracker to state. cue may be nil.
func NewTracker(state *State, cue Cue) *Tracker {
	return &Tracker{state: state, cue: cue}
}

// OnPointerDown starts a drag at (x, y).
func (t *Tracker) OnPointerDown(x, y float64) {
	t.state.Dragging = true
	t.state.StartX = x
	t.state.StartY = y
	if t.cue != nil {
		t.cue.SetGrabbing(true)
	}
}

// OnPointerUp ends the drag. It is safe to call when no drag is active.
func (t *Tracker) OnPointerUp() {
	t.state.Dragging = false
	if t.cue != nil {
		t.cue.SetGrabbing(false)
	}
}

// OnPointerMove accumulates the delta since the previous move into the
// target rotation. Ignored unless dragging.
func (t *Tracker) OnPointerMove(x, y float64) {
	s := t.state
	if !s.Dragging {
		return
	}

	deltaX := x - s.StartX
	deltaY := y - s.StartY
	s.StartX = x
	s.StartY = y

	s.TargetRotationY = Clamp(s.TargetRotationY+deltaX*Sensitivity, MaxRotationY)
	s.TargetRotationX = Clamp(s.TargetRotationX+deltaY*Sensitivity, MaxRotationX)
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.state.Dragging
}
