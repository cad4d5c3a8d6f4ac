package headless

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bouncebox/internal/config"
	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/registry"
	"github.com/vovakirdan/bouncebox/internal/storage"
)

func testEnv(seed int64, frames int) registry.Env {
	return registry.Env{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed},
		Frames:  frames,
		User:    "tester",
	}
}

func TestSimulateRunsFrames(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int64
	}{
		{"explicit", 250, 250},
		{"single", 1, 1},
		{"default", 0, DefaultFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := Simulate(context.Background(), testEnv(11, tt.frames))
			if err != nil {
				t.Fatalf("Simulate() error = %v", err)
			}
			if run.Ticks != tt.want {
				t.Errorf("ticks = %d, want %d", run.Ticks, tt.want)
			}
			if run.ViewportW != 640 || run.ViewportH != 384 {
				t.Errorf("viewport = %gx%g, want 640x384", run.ViewportW, run.ViewportH)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(context.Background(), testEnv(99, 2000))
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	b, err := Simulate(context.Background(), testEnv(99, 2000))
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if a.BoxW != b.BoxW || a.BoxH != b.BoxH {
		t.Errorf("box sizes differ: %gx%g vs %gx%g", a.BoxW, a.BoxH, b.BoxW, b.BoxH)
	}
	if a.HorizontalBounces != b.HorizontalBounces || a.VerticalBounces != b.VerticalBounces {
		t.Errorf("bounces differ: %d/%d vs %d/%d",
			a.HorizontalBounces, a.VerticalBounces, b.HorizontalBounces, b.VerticalBounces)
	}
	if a.HorizontalBounces == 0 || a.VerticalBounces == 0 {
		t.Errorf("expected bounces on both axes after 2000 frames, got %d/%d",
			a.HorizontalBounces, a.VerticalBounces)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := Simulate(ctx, testEnv(5, 100))
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if run.Ticks != 1 {
		t.Errorf("ticks = %d, want 1 (start only)", run.Ticks)
	}
}

func TestSimulateWritesSummary(t *testing.T) {
	var out bytes.Buffer
	env := testEnv(3, 10)
	env.Out = &out

	if _, err := Simulate(context.Background(), env); err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for _, want := range []string{"Seed:      3", "Viewport:  640x384", "Frames:    10", "Bounces:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}

func TestSimulateRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	env := testEnv(8, 30)
	env.Store = store

	run, err := Simulate(context.Background(), env)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	got, err := store.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Backend != BackendID || got.User != "tester" || got.Ticks != 30 || got.Seed != 8 {
		t.Errorf("stored run = %+v", got)
	}
}

func TestBackendRegistered(t *testing.T) {
	if !registry.Exists(BackendID) {
		t.Fatalf("backend %q not registered", BackendID)
	}
	b, err := registry.Create(BackendID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.ID() != BackendID {
		t.Errorf("ID() = %q, want %q", b.ID(), BackendID)
	}
}
