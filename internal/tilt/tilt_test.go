package tilt

import (
	"math"
	"strings"
	"testing"

	"stardrag/internal/interaction"
)

type fakeTarget struct {
	bounds     Rect
	transforms []string
	hover      bool
}

func (f *fakeTarget) Bounds() Rect             { return f.bounds }
func (f *fakeTarget) SetTransform(t Transform) { f.transforms = append(f.transforms, t.String()) }
func (f *fakeTarget) SetHoverClass(on bool)    { f.hover = on }

func (f *fakeTarget) last() string {
	if len(f.transforms) == 0 {
		return ""
	}
	return f.transforms[len(f.transforms)-1]
}

type fakeRequester struct {
	queue []func()
}

func (f *fakeRequester) RequestFrame(fn func()) {
	f.queue = append(f.queue, fn)
}

func (f *fakeRequester) tick() {
	current := f.queue
	f.queue = nil
	for _, fn := range current {
		fn()
	}
}

func TestTransformString(t *testing.T) {
	tests := []struct {
		name string
		in   Transform
		want string
	}{
		{"reset", ResetTransform(), "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"},
		{"hover", Transform{Perspective: 1000, RotateX: -5, RotateY: 2.5, Scale: 1.02}, "perspective(1000px) rotateX(-5deg) rotateY(2.5deg) scale(1.02)"},
		{"page", Transform{Perspective: 1500, RotateX: -2.5, RotateY: 5, Order: RotateYX}, "perspective(1500px) rotateY(5deg) rotateX(-2.5deg)"},
		{"negative zero", Transform{Perspective: 1000, RotateX: math.Copysign(0, -1), Scale: 1}, "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{2.5, "2.5"},
		{-0.000001, "-0.000001"},
		{1.5e-7, "1.5e-7"},
		{-5e-300, "-5e-300"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGlobalTransformNearZeroStaysShort(t *testing.T) {
	state := interaction.NewState()
	state.RotationY = 5e-300

	got := GlobalTransform(state).String()
	if len(got) > 80 || !strings.Contains(got, "e-29") || !strings.HasSuffix(got, "rotateX(0deg)") {
		t.Errorf("String() = %q, want a short exponent form", got)
	}
}

func TestCardTransformAngles(t *testing.T) {
	bounds := Rect{Left: 100, Top: 50, Width: 200, Height: 100}

	tests := []struct {
		name   string
		x, y   float64
		rx, ry float64
	}{
		{"centre", 200, 100, 0, 0},
		{"right edge", 300, 100, 0, 10},
		{"left edge", 100, 100, 0, -10},
		{"top edge", 200, 50, 10, 0},
		{"bottom right quarter", 250, 125, -5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardTransform(bounds, tt.x, tt.y)
			if got.RotateX != tt.rx || got.RotateY != tt.ry {
				t.Errorf("rotate = (%v, %v), want (%v, %v)", got.RotateX, got.RotateY, tt.rx, tt.ry)
			}
			if got.Scale != CardHoverScale {
				t.Errorf("Scale = %v, want %v", got.Scale, CardHoverScale)
			}
		})
	}
}

func TestCardTransformZeroBounds(t *testing.T) {
	got := CardTransform(Rect{Width: 0, Height: 10}, 5, 5)
	if want := "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1.02)"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}

func TestCardHoverAtCentreIsFlat(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	target := &fakeTarget{bounds: Rect{Left: 0, Top: 0, Width: 300, Height: 200}}
	card := NewCard(target, state, req)

	card.Enter(10, 10)
	card.Move(150, 100)
	req.tick()

	if want := "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1.02)"; target.last() != want {
		t.Errorf("transform = %q, want %q", target.last(), want)
	}
	if !target.hover {
		t.Error("hover class not set")
	}
}

func TestCardMoveAppliesOnNextFrame(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	target := &fakeTarget{bounds: Rect{Width: 100, Height: 100}}
	card := NewCard(target, state, req)

	card.Enter(50, 50)
	req.tick()
	applied := len(target.transforms)

	card.Move(100, 50)
	if len(target.transforms) != applied {
		t.Fatal("Move applied a transform directly")
	}

	req.tick()
	if want := "perspective(1000px) rotateX(0deg) rotateY(10deg) scale(1.02)"; target.last() != want {
		t.Errorf("transform = %q, want %q", target.last(), want)
	}
}

func TestCardLeaveResets(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	target := &fakeTarget{bounds: Rect{Width: 100, Height: 100}}
	card := NewCard(target, state, req)

	card.Enter(0, 0)
	card.Move(7, 93)
	req.tick()
	card.Leave()

	if want := "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"; target.last() != want {
		t.Errorf("transform = %q, want %q", target.last(), want)
	}
	if target.hover {
		t.Error("hover class still set")
	}

	applied := len(target.transforms)
	req.tick()
	req.tick()
	if len(target.transforms) != applied {
		t.Error("loop kept applying after leave")
	}
	if len(req.queue) != 0 {
		t.Errorf("loop still scheduled after leave: %d", len(req.queue))
	}
}

func TestCardSkipsWhileDragging(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	target := &fakeTarget{bounds: Rect{Width: 100, Height: 100}}
	card := NewCard(target, state, req)

	card.Enter(100, 50)
	req.tick()
	before := target.last()

	state.Dragging = true
	card.Move(0, 0)
	for i := 0; i < 5; i++ {
		req.tick()
		if len(req.queue) != 1 {
			t.Fatalf("frame %d: loop stopped while dragging", i)
		}
	}
	if target.last() != before {
		t.Errorf("transform changed mid-drag: %q, want %q", target.last(), before)
	}

	state.Dragging = false
	req.tick()
	if want := "perspective(1000px) rotateX(10deg) rotateY(-10deg) scale(1.02)"; target.last() != want {
		t.Errorf("transform after drag = %q, want %q", target.last(), want)
	}
}

func TestCardReenterDoesNotDoubleSchedule(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	card := NewCard(&fakeTarget{bounds: Rect{Width: 10, Height: 10}}, state, req)

	card.Enter(1, 1)
	card.Leave()
	card.Enter(2, 2)

	if len(req.queue) != 1 {
		t.Errorf("queued = %d, want 1", len(req.queue))
	}
	req.tick()
	if !card.Hovering() || len(req.queue) != 1 {
		t.Errorf("hovering = %v, queued = %d", card.Hovering(), len(req.queue))
	}
}

func TestRegistry(t *testing.T) {
	state := interaction.NewState()
	req := &fakeRequester{}
	a := &fakeTarget{}
	b := &fakeTarget{}

	r := NewRegistry(state, req, a, nil, b)

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if r.Cards()[0].Target() != a || r.Cards()[1].Target() != b {
		t.Error("cards not in registration order")
	}
	if NewRegistry(state, req).Len() != 0 {
		t.Error("empty registry is not empty")
	}
}

type fakeContainer struct {
	last string
	sets int
}

func (f *fakeContainer) SetTransform(t Transform) {
	f.last = t.String()
	f.sets++
}

func TestGlobalFollowsSmoothedRotation(t *testing.T) {
	state := &interaction.State{RotationY: 0.25, RotationX: 0.125, TargetRotationY: 0.5}
	container := &fakeContainer{}
	req := &fakeRequester{}
	g := NewGlobal(state, container)

	g.Start(req)
	g.Start(req)
	req.tick()

	if want := "perspective(1500px) rotateY(5deg) rotateX(-2.5deg)"; container.last != want {
		t.Errorf("transform = %q, want %q", container.last, want)
	}

	state.RotationY = -0.5
	req.tick()
	if want := "perspective(1500px) rotateY(-10deg) rotateX(-2.5deg)"; container.last != want {
		t.Errorf("transform = %q, want %q", container.last, want)
	}
	if container.sets != 2 || len(req.queue) != 1 {
		t.Errorf("sets = %d, queued = %d, want 2 and 1", container.sets, len(req.queue))
	}
}

func TestGlobalDisabledWithoutContainer(t *testing.T) {
	g := NewGlobal(interaction.NewState(), nil)
	req := &fakeRequester{}

	g.Start(req)
	g.Update()

	if g.Enabled() {
		t.Error("Enabled = true without container")
	}
	if len(req.queue) != 0 {
		t.Errorf("queued = %d, want 0", len(req.queue))
	}
}

func TestTransformCorners(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 60}

	flat := ResetTransform().Corners(r)
	for i, c := range r.Corners() {
		if !flat[i].ApproxEqual(c) {
			t.Errorf("flat corner %d = %v, want %v", i, flat[i], c)
		}
	}

	tilted := Transform{Perspective: 1000, RotateY: 10, Scale: 1}.Corners(r)
	if tilted[0].ApproxEqual(r.Corners()[0]) {
		t.Error("rotateY left the top-left corner in place")
	}

	centre := Transform{Perspective: 1000, RotateY: 10, Scale: 1}.Apply(r.Center(), r.Center())
	if !centre.ApproxEqual(r.Center()) {
		t.Errorf("centre moved to %v", centre)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(9.9, 9.9) {
		t.Error("inside point reported outside")
	}
	if r.Contains(10, 5) || r.Contains(-1, 5) {
		t.Error("outside point reported inside")
	}
}
