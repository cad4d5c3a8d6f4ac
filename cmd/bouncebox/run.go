package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncebox/internal/config"
	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/platform/headless"
	"github.com/vovakirdan/bouncebox/internal/platform/tui"
	"github.com/vovakirdan/bouncebox/internal/registry"
	"github.com/vovakirdan/bouncebox/internal/storage"
)

var (
	flagBackend string
	flagFrames  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate the box in this terminal",
	Long: `Start the animation with the chosen backend.

Controls:
  ?          - Toggle full help (tea backend)
  Ctrl+S     - Save a text screenshot (tea backend)
  Q/Esc      - Quit
  Ctrl+C     - Quit

Backends:
  tea       - Bubble Tea program (default)
  tcell     - Raw tcell screen with its own frame loop
  headless  - No terminal, runs --frames frames and prints a summary

Examples:
  bouncebox run
  bouncebox run --backend tcell
  bouncebox run --backend headless --frames 600 --seed 42
  bouncebox run --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBackend, "backend", tui.BackendID, "Backend to run (see 'bouncebox backends')")
	runCmd.Flags().IntVar(&flagFrames, "frames", headless.DefaultFrames, "Frames to simulate (headless backend)")
}

func runRun(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'bouncebox backends' to see available backends.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("bouncebox", flagBackend != headless.BackendID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Runtime.TickRate
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - the animation still works
		store = nil
	}

	env := registry.Env{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Out:    os.Stdout,
		User:   currentUser(),
		Frames: flagFrames,
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := backend.Run(ctx, env)
	stop()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", backend.Title(), runErr)
		closeLog()
		os.Exit(1)
	}
}

// currentUser names the local user for run history.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
