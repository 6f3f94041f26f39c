// Package tui provides the Bubble Tea integration for watching matches.
// It paces the simulation, maps keys, renders the arena and hosts the
// standings browser and the SSH spectator server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval returns the wall-clock time between ticks at the given
// playback speed.
func tickInterval(tickRate int, speed float64) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(time.Second) / (float64(tickRate) * speed))
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval.
func tickCmd(tickRate int, speed float64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate, speed), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
