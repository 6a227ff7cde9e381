// Package tui provides the Bubble Tea integration for starfall.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop it belongs to, so a loop left over from a previous
// game in the same program is ignored instead of doubling the speed.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var tickLoops atomic.Int64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
