// Package tui is the interactive terminal frontend of the console todo
// application. It renders a single task-list screen with an add/edit form
// and a delete confirmation overlay.
package tui

import (
	"todokeeper/internal/logger"
	"todokeeper/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	manager *todo.Manager
	log     *logger.Logger
}

func New(manager *todo.Manager, log *logger.Logger) *TUI {
	return &TUI{manager: manager, log: log}
}

// Run blocks until the user quits the program.
func (t *TUI) Run() error {
	t.log.Info().Msg("starting console todo session")

	model := newTodoModel(t.manager)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	t.log.Info().Msg("console todo session finished")
	return nil
}
