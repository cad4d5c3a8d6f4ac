// Package headless runs the simulation without a terminal, for a fixed
// number of frames, and prints where the box ended up.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
	"github.com/vovakirdan/bouncebox/internal/platform/host"
	"github.com/vovakirdan/bouncebox/internal/registry"
	"github.com/vovakirdan/bouncebox/internal/storage"
)

// BackendID identifies the headless backend.
const BackendID = "headless"

// DefaultFrames is used when Env.Frames is not set.
const DefaultFrames = 600

// Backend steps the simulator on a manual scheduler as fast as possible.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string { return BackendID }

// Title returns the display name.
func (Backend) Title() string { return "Headless (no terminal)" }

// Run starts the simulation immediately and runs Env.Frames frames.
func (Backend) Run(ctx context.Context, env registry.Env) error {
	_, err := Simulate(ctx, env)
	return err
}

// Simulate runs the frames and returns the recorded run. The summary is
// written to env.Out when set.
func Simulate(ctx context.Context, env registry.Env) (storage.Run, error) {
	cols, rows := env.Runtime.ScreenW, env.Runtime.ScreenH
	if cols <= 0 || rows <= 0 {
		def := core.DefaultConfig()
		cols, rows = def.ScreenW, def.ScreenH
	}
	frames := env.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}

	sched := frame.NewManual()
	sess := host.NewSession(env, BackendID, sched, cols, rows)
	if err := sess.Ready(); err != nil {
		return sess.Finish(), err
	}

	// The first tick ran on start.
	for i := 1; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		if sched.RunFrame() == 0 {
			break
		}
	}

	run := sess.Finish()
	if env.Out != nil {
		writeSummary(env.Out, sess, run)
	}
	return run, nil
}

func writeSummary(w io.Writer, sess *host.Session, run storage.Run) {
	box := sess.Sim.Box()
	stats := sess.Sim.Stats()
	vp := sess.Sim.Viewport()

	fmt.Fprintf(w, "Run:       %s\n", run.ID)
	fmt.Fprintf(w, "Seed:      %d\n", run.Seed)
	fmt.Fprintf(w, "Viewport:  %gx%g\n", vp.Horizontal, vp.Vertical)
	fmt.Fprintf(w, "Box:       %gx%g\n", box.Size().Horizontal, box.Size().Vertical)
	fmt.Fprintf(w, "Frames:    %d\n", stats.Ticks)
	fmt.Fprintf(w, "Position:  %g, %g\n", box.Position().Horizontal, box.Position().Vertical)
	fmt.Fprintf(w, "Velocity:  %g, %g\n", box.Velocity().Horizontal, box.Velocity().Vertical)
	fmt.Fprintf(w, "Bounces:   %d horizontal, %d vertical\n", stats.HorizontalBounces, stats.VerticalBounces)
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}
