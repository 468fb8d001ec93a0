// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, rendering and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	cfg := core.RuntimeConfig{TickRate: tickRate}
	return tea.Tick(cfg.StepDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
