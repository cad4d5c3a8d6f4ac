// Package host wires a simulator, its page and its run record together for
// the terminal backends.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncebox/internal/bounce"
	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
	"github.com/vovakirdan/bouncebox/internal/platform/dom"
	"github.com/vovakirdan/bouncebox/internal/registry"
	"github.com/vovakirdan/bouncebox/internal/runlog"
	"github.com/vovakirdan/bouncebox/internal/storage"
)

// Session is one animated rectangle on one terminal area.
type Session struct {
	Page   *dom.Page
	Sim    *bounce.Simulator
	Logger *log.Logger

	run  *runlog.Run
	cols int
	rows int
}

// NewSession builds an idle session sized cols x rows cells. The simulator
// starts on Ready.
func NewSession(env registry.Env, backendID string, sched frame.Scheduler, cols, rows int) *Session {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified, so the run can be replayed
	seed := env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	display := env.Config.Display
	page := dom.NewPage(display.CellWidth, display.CellHeight)
	page.Add(display.ElementID, core.Cell{Rune: display.FillRune(), Color: display.ColorValue()})

	sim := bounce.NewSimulator(page, sched, page.Viewport(cols, rows), bounce.Options{
		ElementID: display.ElementID,
		Speed:     env.Config.Physics.Speed,
		MinSize:   env.Config.Physics.MinSize,
		MaxSize:   env.Config.Physics.MaxSize,
		Seed:      seed,
		Logger:    logger,
	})

	return &Session{
		Page:   page,
		Sim:    sim,
		Logger: logger,
		run:    runlog.FromStore(env.Store, logger).Begin(backendID, env.User, seed),
		cols:   cols,
		rows:   rows,
	}
}

// Ready forwards the host's interactive signal to the simulator.
func (s *Session) Ready() error {
	return s.Sim.OnReadyStateChange(bounce.ReadyInteractive)
}

// Resize updates the simulator bounds. Empty areas are ignored so the box
// keeps its last valid bounds.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.cols, s.rows = cols, rows
	s.Sim.SetViewport(s.Page.Viewport(cols, rows))
}

// Size returns the current area in cells.
func (s *Session) Size() (int, int) {
	return s.cols, s.rows
}

// Draw rasterizes the page into dst.
func (s *Session) Draw(dst *core.Screen) {
	s.Page.Draw(dst)
}

// RunID returns the run record identifier.
func (s *Session) RunID() string {
	return s.run.ID()
}

// Finish records the run. Safe to call more than once.
func (s *Session) Finish() storage.Run {
	return s.run.Finish(s.Sim)
}
