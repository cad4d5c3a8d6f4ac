package frame

import (
	"context"
	"sync"
	"time"
)

// Loop is a fixed-interval Scheduler for hosts without a native frame
// signal. All callbacks and posted events run on the goroutine calling Run.
type Loop struct {
	interval time.Duration

	mu     sync.Mutex
	q      queue
	events []func()
}

// NewLoop creates a loop ticking every interval (DefaultInterval if <= 0).
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval}
}

// Interval returns the frame interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// ScheduleNextFrame queues cb for the next frame. Safe for concurrent use.
func (l *Loop) ScheduleNextFrame(cb func()) {
	l.mu.Lock()
	l.q.push(cb)
	l.mu.Unlock()
}

// Post queues a host event (resize, readiness) to run on the loop goroutine
// at the start of the next frame, before frame callbacks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.events = append(l.events, fn)
	l.mu.Unlock()
}

// RunFrame drains posted events, then runs the frame callbacks registered
// so far. It returns the number of frame callbacks that ran.
func (l *Loop) RunFrame() int {
	l.mu.Lock()
	events := l.events
	l.events = nil
	l.mu.Unlock()
	for _, fn := range events {
		fn()
	}

	l.mu.Lock()
	cbs := l.q.take()
	l.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
	return len(cbs)
}

// Run ticks until ctx is done. After every frame, afterFrame (if non-nil)
// is called on the same goroutine, typically to draw.
func (l *Loop) Run(ctx context.Context, afterFrame func()) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.RunFrame()
			if afterFrame != nil {
				afterFrame()
			}
		}
	}
}
