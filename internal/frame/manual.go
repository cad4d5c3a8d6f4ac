package frame

// Manual is a Scheduler advanced explicitly by the caller.
// It never waits on real time, which makes frame-by-frame runs deterministic.
// Not safe for concurrent use.
type Manual struct {
	q      queue
	frames int
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// ScheduleNextFrame queues cb for the next RunFrame call.
func (m *Manual) ScheduleNextFrame(cb func()) {
	m.q.push(cb)
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int {
	return len(m.q.pending)
}

// Frames returns how many frames have run.
func (m *Manual) Frames() int {
	return m.frames
}

// RunFrame runs every callback registered before the call and returns how
// many ran.
func (m *Manual) RunFrame() int {
	cbs := m.q.take()
	for _, cb := range cbs {
		cb()
	}
	m.frames++
	return len(cbs)
}

// RunFrames runs n frames, stopping early when nothing is scheduled.
// It returns the number of frames that ran at least one callback.
func (m *Manual) RunFrames(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if m.RunFrame() == 0 {
			break
		}
		ran++
	}
	return ran
}
