// Package tui provides the Bubble Tea front end for Klondike: the game
// screen, the variant menu, the scoreboard and the SSH server that serves
// them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once a second to refresh the game clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
