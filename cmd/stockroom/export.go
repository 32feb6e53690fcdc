// Export command writes the collection as a portable JSON document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/portable"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection to a JSON file",
	Long: `Export serializes the entire collection as a pretty-printed JSON
array. The file is written atomically; use --out - to print to stdout.

Example:
  stockroom export
  stockroom export --out /tmp/backup.json
  stockroom export --out -`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", portable.DefaultFileName, "output path, or - for stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	data, err := portable.Export(items)
	if err != nil {
		return err
	}

	if exportOut == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := portable.WriteFile(exportOut, data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported %d item(s) to %s\n", len(items), exportOut)
	return nil
}
