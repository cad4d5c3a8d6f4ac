// Package runlog records simulator sessions into run history.
package runlog

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bouncebox/internal/bounce"
	"github.com/vovakirdan/bouncebox/internal/storage"
)

// Saver persists finished runs. *storage.Store satisfies it.
type Saver interface {
	SaveRun(r storage.Run) error
}

// Recorder hands out Run handles. A nil Saver records nothing.
type Recorder struct {
	saver  Saver
	logger *log.Logger
	now    func() time.Time
}

// NewRecorder creates a recorder writing to saver.
func NewRecorder(saver Saver, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{saver: saver, logger: logger, now: time.Now}
}

// FromStore creates a recorder for an optional store; a nil store records
// nothing.
func FromStore(store *storage.Store, logger *log.Logger) *Recorder {
	if store == nil {
		return NewRecorder(nil, logger)
	}
	return NewRecorder(store, logger)
}

// Run tracks one session until Finish.
type Run struct {
	rec      *Recorder
	record   storage.Run
	finished bool
}

// Begin starts tracking a session on the given backend.
func (r *Recorder) Begin(backend, user string, seed int64) *Run {
	return &Run{
		rec: r,
		record: storage.Run{
			ID:        uuid.New().String(),
			Backend:   backend,
			User:      user,
			Seed:      seed,
			StartedAt: r.now(),
		},
	}
}

// ID returns the run identifier.
func (r *Run) ID() string {
	return r.record.ID
}

// Finish snapshots the simulator and saves the run. Runs whose simulator
// never started are dropped. Only the first call has an effect.
func (r *Run) Finish(sim *bounce.Simulator) storage.Run {
	if r.finished {
		return r.record
	}
	r.finished = true

	rec := r.record
	rec.EndedAt = r.rec.now()
	if sim != nil {
		vp := sim.Viewport()
		box := sim.Box()
		stats := sim.Stats()
		rec.ViewportW, rec.ViewportH = vp.Horizontal, vp.Vertical
		rec.BoxW, rec.BoxH = box.Size().Horizontal, box.Size().Vertical
		rec.Ticks = stats.Ticks
		rec.HorizontalBounces = stats.HorizontalBounces
		rec.VerticalBounces = stats.VerticalBounces
	}
	r.record = rec

	if sim == nil || sim.State() != bounce.StateRunning {
		r.rec.logger.Debug("run not started, not recorded", "run", rec.ID)
		return rec
	}
	if r.rec.saver == nil {
		return rec
	}
	if err := r.rec.saver.SaveRun(rec); err != nil {
		r.rec.logger.Warn("could not save run", "run", rec.ID, "error", err)
		return rec
	}

	r.rec.logger.Info("run recorded",
		"run", rec.ID,
		"backend", rec.Backend,
		"ticks", rec.Ticks,
		"bounces", rec.HorizontalBounces+rec.VerticalBounces,
	)
	return rec
}
