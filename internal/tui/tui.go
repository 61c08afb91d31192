package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/allensfl/coach-mission-control/internal/db"
)

// RunAddClientTUI starts the interactive add client wizard
func RunAddClientTUI(store *db.Store, prefilled map[string]string) error {
	model := NewAddClientModel(store, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddClientModel); ok {
		if m.cancelled {
			fmt.Println("❌ Client creation cancelled.")
		} else if m.completed && m.createdClientID != "" {
			fmt.Printf("✅ New client \"%s\" added - ID: %s\n", m.createdClientName, m.createdClientID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunEditClientTUI starts the interactive edit client wizard
func RunEditClientTUI(store *db.Store, clientID string, prefilled map[string]string) error {
	model := NewEditClientModel(store, clientID, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddClientModel); ok {
		if m.cancelled {
			fmt.Println("❌ Edit cancelled.")
		} else if m.completed {
			fmt.Printf("✅ Client \"%s\" updated\n", m.createdClientName)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
