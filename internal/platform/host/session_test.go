package host

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bouncebox/internal/bounce"
	"github.com/vovakirdan/bouncebox/internal/config"
	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
	"github.com/vovakirdan/bouncebox/internal/registry"
)

func testEnv(seed int64) registry.Env {
	return registry.Env{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{Seed: seed},
		User:    "tester",
	}
}

func TestSessionReadyStartsSimulation(t *testing.T) {
	sched := frame.NewManual()
	s := NewSession(testEnv(1), "test", sched, 40, 10)

	if s.Sim.State() != bounce.StateIdle {
		t.Fatal("session should start idle")
	}
	if err := s.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	if s.Sim.State() != bounce.StateRunning {
		t.Fatal("session should be running after Ready")
	}
	if sched.Pending() != 1 {
		t.Errorf("pending = %d, want 1", sched.Pending())
	}

	el := s.Page.Element(bounce.DefaultElementID)
	if !el.HasClass(bounce.ActiveClass) {
		t.Error("element should be active")
	}
}

func TestSessionResize(t *testing.T) {
	s := NewSession(testEnv(1), "test", frame.NewManual(), 40, 10)

	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{"grow", 100, 30, 100, 30},
		{"zero ignored", 0, 30, 100, 30},
		{"negative ignored", 50, -1, 100, 30},
		{"shrink", 60, 20, 60, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Resize(tt.cols, tt.rows)
			cols, rows := s.Size()
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("Size() = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
			want := core.M(float64(tt.wantCols*8), float64(tt.wantRows*16))
			if got := s.Sim.Viewport(); got != want {
				t.Errorf("viewport = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSessionDraw(t *testing.T) {
	s := NewSession(testEnv(2), "test", frame.NewManual(), 40, 10)
	screen := core.NewScreen(40, 10)

	s.Draw(screen)
	if strings.ContainsRune(screen.String(), '█') {
		t.Error("inactive element should not be drawn")
	}

	if err := s.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	s.Draw(screen)
	if !strings.ContainsRune(screen.String(), '█') {
		t.Error("active element should be drawn")
	}
}

func TestSessionFinish(t *testing.T) {
	sched := frame.NewManual()
	s := NewSession(testEnv(4), "test", sched, 40, 10)
	if err := s.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	sched.RunFrames(9)

	run := s.Finish()
	if run.ID != s.RunID() {
		t.Errorf("run ID = %q, want %q", run.ID, s.RunID())
	}
	if run.Ticks != 10 || run.Seed != 4 || run.Backend != "test" || run.User != "tester" {
		t.Errorf("run = %+v", run)
	}
	if again := s.Finish(); again.EndedAt != run.EndedAt {
		t.Error("second Finish should return the first record")
	}
}

func TestSessionResolvesSeed(t *testing.T) {
	s := NewSession(testEnv(0), "test", frame.NewManual(), 40, 10)
	if err := s.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	if run := s.Finish(); run.Seed == 0 {
		t.Error("seed 0 should be replaced by a time-based seed")
	}
}

func TestSessionCustomElementID(t *testing.T) {
	env := testEnv(1)
	env.Config.Display.ElementID = "box"
	if err := env.Config.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	s := NewSession(env, "test", frame.NewManual(), 40, 10)
	if err := s.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}

	el := s.Page.Element("box")
	if el == nil {
		t.Fatal("element \"box\" not on the page")
	}
	if !el.HasClass(bounce.ActiveClass) {
		t.Error("custom element should be active")
	}
	if s.Page.Element(bounce.DefaultElementID) != nil {
		t.Error("default element should not be added for a custom id")
	}
}
