package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/billswift/stockroom/pkg/types"
)

// Run starts the interactive editor and blocks until the user quits.
func Run(store types.Store, cfg types.Config) error {
	m, err := New(store, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
