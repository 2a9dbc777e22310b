// Package tui runs coinfall in the terminal through Bubble Tea. It maps key
// presses to held actions, paces the simulation with tick messages and hosts
// the menus, the scoreboard, the spectator view and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. At is the wall clock
// time the tick fired, which is the frame's time sample. Gen identifies the
// model that scheduled it so a stale tick from a finished round is ignored.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation for a new play model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(gen uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
