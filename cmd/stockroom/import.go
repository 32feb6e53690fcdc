// Import command replaces the collection from a portable JSON document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/portable"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a collection from a JSON file",
	Long: `Import reads a JSON document whose top-level value is an array of
items and replaces the entire collection with it. Missing IDs are assigned,
numeric fields are clamped, and unknown fields are ignored. A parse or
shape failure aborts the import and leaves the collection untouched.

Example:
  stockroom import inventory.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	items, err := portable.Import(data)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(items); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]int{"imported": len(items)})
	}
	fmt.Printf("Imported %d item(s)\n", len(items))
	return nil
}
