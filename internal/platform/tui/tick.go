// Package tui runs a game inside a Bubble Tea program: it turns keys and
// mouse clicks into input frames, ticks the simulation and draws the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next frame. It is re-issued after every tick, in
// every phase, so the loop only ends when the program quits.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
