package engine

// FrameFunc is a callback run on the next display refresh.
type FrameFunc = func()

// Scheduler queues frame callbacks the way a browser's animation frame
// queue does: a callback requested while a tick runs waits for the next
// tick, so self-rescheduling loops run once per frame.
type Scheduler struct {
	queue []FrameFunc
	spare []FrameFunc
	frame uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame queues fn for the next Tick.
func (s *Scheduler) RequestFrame(fn FrameFunc) {
	s.queue = append(s.queue, fn)
}

// Tick runs every callback queued before it was called, in request order.
func (s *Scheduler) Tick() {
	s.frame++

	current := s.queue
	s.queue = s.spare[:0]

	for i, fn := range current {
		fn()
		current[i] = nil
	}
	s.spare = current[:0]
}

// Frame returns the number of ticks run so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Pending returns how many callbacks wait for the next tick.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
