// UI command launches the interactive terminal editor.
package main

import (
	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive inventory editor",
	Long: `UI opens a full-screen terminal editor with live search, supplier
and stock-state filters, sortable columns, and an add/edit form. Changes
are persisted as they are made.

Example:
  stockroom ui`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return tui.Run(store, cfg)
}
