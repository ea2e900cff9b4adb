package interaction

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

type cueRecorder struct {
	calls []bool
}

func (c *cueRecorder) SetGrabbing(grabbing bool) {
	c.calls = append(c.calls, grabbing)
}

func TestPointerDownStartsDrag(t *testing.T) {
	state := NewState()
	cue := &cueRecorder{}
	tracker := NewTracker(state, cue)

	tracker.OnPointerDown(100, 100)

	if !state.Dragging {
		t.Fatal("Dragging = false after pointer down")
	}
	if state.StartX != 100 || state.StartY != 100 {
		t.Errorf("start = (%v, %v), want (100, 100)", state.StartX, state.StartY)
	}
	if len(cue.calls) != 1 || !cue.calls[0] {
		t.Errorf("cue calls = %v, want [true]", cue.calls)
	}
}

func TestPointerMoveScenario(t *testing.T) {
	state := NewState()
	tracker := NewTracker(state, nil)

	tracker.OnPointerDown(100, 100)
	tracker.OnPointerMove(150, 130)

	if math.Abs(state.TargetRotationY-0.25) > epsilon {
		t.Errorf("TargetRotationY = %v, want 0.25", state.TargetRotationY)
	}
	if math.Abs(state.TargetRotationX-0.15) > epsilon {
		t.Errorf("TargetRotationX = %v, want 0.15", state.TargetRotationX)
	}
	if state.StartX != 150 || state.StartY != 130 {
		t.Errorf("start = (%v, %v), want (150, 130)", state.StartX, state.StartY)
	}
}

func TestPointerMoveIgnoredWithoutDrag(t *testing.T) {
	state := NewState()
	tracker := NewTracker(state, nil)

	tracker.OnPointerMove(500, 500)

	if *state != (State{}) {
		t.Errorf("state changed without drag: %+v", *state)
	}
}

func TestPointerMoveIsIncremental(t *testing.T) {
	state := NewState()
	tracker := NewTracker(state, nil)

	tracker.OnPointerDown(0, 0)
	tracker.OnPointerMove(10, 0)
	tracker.OnPointerMove(20, 0)

	// Two deltas of 10, not 10 + 20 measured from the origin.
	if math.Abs(state.TargetRotationY-0.1) > epsilon {
		t.Errorf("TargetRotationY = %v, want 0.1", state.TargetRotationY)
	}
}

func TestTargetSaturates(t *testing.T) {
	state := NewState()
	tracker := NewTracker(state, nil)

	tracker.OnPointerDown(0, 0)
	x := 0.0
	for i := 0; i < 200; i++ {
		x += 50
		tracker.OnPointerMove(x, 0)
		if state.TargetRotationY > MaxRotationY {
			t.Fatalf("step %d: TargetRotationY = %v exceeds limit", i, state.TargetRotationY)
		}
	}

	if state.TargetRotationY != MaxRotationY {
		t.Errorf("TargetRotationY = %v, want exactly %v", state.TargetRotationY, MaxRotationY)
	}

	// Pinned values do not remember the overshoot.
	tracker.OnPointerMove(x-50, 0)
	if math.Abs(state.TargetRotationY-(MaxRotationY-0.25)) > epsilon {
		t.Errorf("TargetRotationY after reversal = %v, want %v", state.TargetRotationY, MaxRotationY-0.25)
	}
}

func TestTargetsStayClampedForRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	state := NewState()
	tracker := NewTracker(state, nil)

	tracker.OnPointerDown(0, 0)
	for i := 0; i < 5000; i++ {
		tracker.OnPointerMove(rng.Float64()*4000-2000, rng.Float64()*4000-2000)

		if state.TargetRotationY < -MaxRotationY || state.TargetRotationY > MaxRotationY {
			t.Fatalf("step %d: TargetRotationY = %v out of range", i, state.TargetRotationY)
		}
		if state.TargetRotationX < -MaxRotationX || state.TargetRotationX > MaxRotationX {
			t.Fatalf("step %d: TargetRotationX = %v out of range", i, state.TargetRotationX)
		}
	}
}

func TestPointerUpIdempotent(t *testing.T) {
	state := &State{
		RotationX:       0.1,
		RotationY:       -0.2,
		TargetRotationX: 0.3,
		TargetRotationY: -0.4,
	}
	before := *state
	cue := &cueRecorder{}
	tracker := NewTracker(state, cue)

	tracker.OnPointerUp()
	tracker.OnPointerUp()

	if *state != before {
		t.Errorf("state = %+v, want %+v", *state, before)
	}
	if tracker.Dragging() {
		t.Error("Dragging = true after pointer up")
	}
	for _, c := range cue.calls {
		if c {
			t.Errorf("cue calls = %v, want only false", cue.calls)
		}
	}
}

func TestPointerUpEndsDrag(t *testing.T) {
	state := NewState()
	cue := &cueRecorder{}
	tracker := NewTracker(state, cue)

	tracker.OnPointerDown(1, 1)
	tracker.OnPointerUp()
	tracker.OnPointerMove(100, 100)

	if state.Dragging {
		t.Error("Dragging = true after pointer up")
	}
	if state.TargetRotationY != 0 || state.TargetRotationX != 0 {
		t.Errorf("targets moved after pointer up: %+v", *state)
	}
	if len(cue.calls) != 2 || cue.calls[1] {
		t.Errorf("cue calls = %v, want [true false]", cue.calls)
	}
}
