// Package tui provides the Bubble Tea host for bouncebox.
// It handles the terminal UI loop, key bindings and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bouncebox/internal/frame"
)

// TickMsg is sent to trigger one animation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// frame interval at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frame.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
