package interaction

// Rotation limits keep the page from flipping over or spinning.
const (
	MaxRotationX = 0.3
	MaxRotationY = 0.5

	// Sensitivity converts pointer pixels into radians of target rotation.
	Sensitivity = 0.005

	// EaseFactor is the fraction of the remaining distance covered per frame.
	EaseFactor = 0.1
)

// State is the interaction record shared by the tracker, the background
// loop and the global tilt. It is only touched from the frame loop's
// goroutine; a host that calls into it from several goroutines must guard
// it itself.
type State struct {
	Dragging bool

	StartX float64
	StartY float64

	// Smoothed angles in radians, written by the background loop.
	RotationX float64
	RotationY float64

	// Clamped drag targets, written by the pointer tracker.
	TargetRotationX float64
	TargetRotationY float64
}

// NewState returns a state at rest.
func NewState() *State {
	return &State{}
}

// Smooth moves both rotation angles one easing step toward their targets.
func (s *State) Smooth() {
	s.RotationY = Smooth(s.RotationY, s.TargetRotationY, EaseFactor)
	s.RotationX = Smooth(s.RotationX, s.TargetRotationX, EaseFactor)
}

// Smooth is first-order exponential easing of current toward target.
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp pins v into [-limit, limit].
func Clamp(v, limit float64) float64 {
	return max(-limit, min(limit, v))
}
