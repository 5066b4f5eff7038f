// Package tui provides the Bubble Tea integration for playing stagehand
// projects in a terminal. It handles the simulation tick loop, mouse and
// keyboard mapping, and rendering the runtime snapshot to a cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
