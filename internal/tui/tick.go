// Package tui provides the Bubble Tea integration: the terminal UI loop,
// key-to-action mapping, the periodic clock driving the engine, the
// scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next tick after
// the given interval. The model re-arms it only while the engine is
// running, so no tick fires while idle, paused or after game over.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
