// Package tui provides the Bubble Tea integration: the game screen, the
// main menu, the match-history view, and the SSH server. It translates
// input to rules-engine calls and renders the engine's read-only state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives animation (the win-line blink). The rules engine is
// turn-based and never ticks.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
