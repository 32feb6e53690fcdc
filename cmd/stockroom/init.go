// Init command creates the config directory and seeds the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and storage",
	Long: `Init writes a default config.yaml to the configuration directory,
creates the data directory, and seeds the demo collection if no inventory
exists yet.

Example:
  stockroom init
  stockroom init --data-dir ./inventory`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	fmt.Printf("Stockroom initialized: %d item(s) in %s\n", len(items), cfg.DataDir)
	return nil
}
