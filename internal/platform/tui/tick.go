// Package tui provides the Bubble Tea integration for the life simulation.
// It handles the terminal UI loop, key and mouse mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg struct {
	Time time.Time
	ID   uint64 // Board the tick loop belongs to
}

// lastTickID numbers tick loops so a stale loop cannot drive a newer board.
var lastTickID atomic.Uint64

func newTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
