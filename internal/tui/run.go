package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todolist/internal/todo"
)

// Run starts the interactive list over c. Every committed change is already
// persisted by the container, so nothing is written on quit.
func Run(c *todo.Container, opt Options) error {
	m := New(c, opt)
	m.logger.Debug("tui started", "items", len(c.Items()))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		m.logger.Error("tui", "err", err)
	}
	return err
}
