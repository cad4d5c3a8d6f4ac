// Package tcellui hosts the bouncing box directly on a tcell screen, driven
// by a fixed-interval frame loop instead of Bubble Tea's tick.
package tcellui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
	"github.com/vovakirdan/bouncebox/internal/platform/host"
	"github.com/vovakirdan/bouncebox/internal/registry"
)

// BackendID identifies the tcell backend.
const BackendID = "tcell"

// Backend runs the box on a raw tcell screen.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string { return BackendID }

// Title returns the display name.
func (Backend) Title() string { return "tcell (frame loop)" }

// Run opens the terminal screen and animates until a quit key or ctx ends.
func (Backend) Run(ctx context.Context, env registry.Env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()

	return run(ctx, env, screen)
}

// run drives an initialized screen. The caller owns Init and Fini.
func run(ctx context.Context, env registry.Env, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tickRate := env.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = env.Config.Runtime.TickRate
	}
	loop := frame.NewLoop(frame.Interval(tickRate))

	cols, rows := screen.Size()
	sess := host.NewSession(env, BackendID, loop, cols, rows)
	defer sess.Finish()

	buf := core.NewScreen(cols, rows)
	if err := sess.Ready(); err != nil {
		return err
	}

	go pollEvents(screen, loop, cancel, func(w, h int) {
		buf.Resize(w, h)
		sess.Resize(w, h)
	})

	err := loop.Run(ctx, func() {
		sess.Draw(buf)
		blit(screen, buf)
		screen.Show()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards terminal events to the loop goroutine until the
// screen is finalized.
func pollEvents(screen tcell.Screen, loop *frame.Loop, quit context.CancelFunc, resize func(w, h int)) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev.Key(), ev.Rune()) {
				quit()
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			loop.Post(func() {
				resize(w, h)
				screen.Sync()
			})
		}
	}
}

// isQuitKey reports whether the key ends the animation.
func isQuitKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// blit copies the cell buffer to the tcell screen.
func blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, cellStyle(cell.Color))
		}
	}
}

// cellStyle maps a cell color to a tcell style.
func cellStyle(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}
