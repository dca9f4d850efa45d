// Package tui hosts the engine in a terminal through Bubble Tea: ticks
// drive frames, key messages feed the device hub and the core.Screen the
// engine draws into is rendered with lipgloss.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every refresh tick. ID names the model whose loop
// sent it, so a tick still in flight when a session swaps models is
// dropped instead of starting a second loop.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastModelID atomic.Uint64

func nextModelID() uint64 {
	return lastModelID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(id uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
