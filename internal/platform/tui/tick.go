// Package tui provides the Bubble Tea integration for terminal barista.
// It runs games in the terminal, maps keys to actions, and serves the
// same screens over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg asks the runner to refresh the HUD clock.
type ClockMsg time.Time

// clockCmd returns a command that sends a ClockMsg at the given rate per second.
func clockCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 1
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
