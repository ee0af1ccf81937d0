package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvales/taskpad/internal/taskpad"
)

// Run starts the interactive interface and blocks until it exits.
func Run(app *taskpad.App) error {
	m := NewModel(app)

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.surface.SetSend(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
