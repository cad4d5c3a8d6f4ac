// Package frame provides frame schedulers: the periodic callback mechanism
// that drives the simulation one frame at a time.
//
// A scheduler runs a registered callback once, before the next frame is
// drawn. Callbacks that want to keep running register themselves again.
package frame

import "time"

// DefaultInterval is the fallback frame interval used when a host has no
// native frame signal (1000/60 ms).
const DefaultInterval = time.Second / 60

// Scheduler registers a callback for the next frame.
type Scheduler interface {
	ScheduleNextFrame(cb func())
}

// Interval returns the frame interval for a tick rate in frames per second.
// Non-positive rates fall back to DefaultInterval.
func Interval(tickRate int) time.Duration {
	if tickRate <= 0 {
		return DefaultInterval
	}
	return time.Second / time.Duration(tickRate)
}

// queue is the callback list shared by Manual and Loop.
type queue struct {
	pending []func()
}

func (q *queue) push(cb func()) {
	if cb != nil {
		q.pending = append(q.pending, cb)
	}
}

// take removes and returns the callbacks registered so far. Callbacks
// registered while these run belong to the following frame.
func (q *queue) take() []func() {
	cbs := q.pending
	q.pending = nil
	return cbs
}
