package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bouncebox/internal/bounce"
	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
	"github.com/vovakirdan/bouncebox/internal/platform/host"
	"github.com/vovakirdan/bouncebox/internal/registry"
)

// BackendID identifies the Bubble Tea backend.
const BackendID = "tea"

// errorStyle colors the start failure line.
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// helpHeight is the number of rows reserved below the animation area.
const helpHeight = 1

// Model is the Bubble Tea model running one bouncing box.
type Model struct {
	session  *host.Session
	frames   *frame.Manual
	screen   *core.Screen
	tickRate int
	keys     KeyMap
	help     help.Model
	err      error
	quitting bool
}

// NewModel creates a model sized to the runtime screen. The animation
// starts once the terminal reports its size.
func NewModel(env registry.Env, backendID string) Model {
	cols, rows := env.Runtime.ScreenW, env.Runtime.ScreenH-helpHeight
	frames := frame.NewManual()

	tickRate := env.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = env.Config.Runtime.TickRate
	}

	return Model{
		session:  host.NewSession(env, backendID, frames, cols, rows),
		frames:   frames,
		screen:   core.NewScreen(cols, rows),
		tickRate: tickRate,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.session.Logger.Warn("could not save screenshot", "error", err)
		}
	}
	return m, nil
}

// handleResize updates the viewport. The first size report is the
// readiness signal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, rows := msg.Width, msg.Height-helpHeight
	m.help.Width = msg.Width
	m.screen.Resize(cols, rows)
	m.session.Resize(cols, rows)
	return m.ready()
}

// handleTick runs one frame of scheduled callbacks and re-arms the clock.
// The clock stops once the simulation failed to start.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Sim.State() == bounce.StateIdle {
		// No size report arrived; start with the runtime size.
		next, _ := m.ready()
		m = next.(Model)
	}
	if m.err != nil {
		return m, nil
	}

	m.frames.RunFrame()
	return m, tickCmd(m.tickRate)
}

// ready starts the simulation if it is not running yet. A start failure is
// kept and shown until the user quits.
func (m Model) ready() (tea.Model, tea.Cmd) {
	if m.err != nil || m.session.Sim.State() == bounce.StateRunning {
		return m, nil
	}
	if err := m.session.Ready(); err != nil {
		m.session.Logger.Error("could not start", "error", err)
		m.err = err
	}
	return m, nil
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() error {
	m.session.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".bouncebox", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bounce_%s.txt", timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return m.errorView()
	}

	m.session.Draw(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// errorView draws the start failure on its own line, wide enough for the
// message even when the terminal area is empty.
func (m Model) errorView() string {
	text := fmt.Sprintf("could not start: %v", m.err)
	line := core.NewScreen(core.Max(m.screen.Width(), len([]rune(text))), 1)
	line.DrawText(0, 0, text)
	return errorStyle.Render(line.Row(0)) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Session returns the underlying session.
func (m Model) Session() *host.Session {
	return m.session
}

// Run starts the Bubble Tea program in the current terminal.
func Run(ctx context.Context, env registry.Env) error {
	model := NewModel(env, BackendID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	model.Session().Finish()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

// Backend registers the Bubble Tea host.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string { return BackendID }

// Title returns the display name.
func (Backend) Title() string { return "Bubble Tea (default)" }

// Run starts the program.
func (Backend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}
