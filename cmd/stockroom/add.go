// Add command creates a new inventory item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/form"
)

var (
	addName     string
	addSupplier string
	addStock    string
	addValue    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new item",
	Long: `Add creates an item with a generated ID. Name and supplier must be
non-empty; stock is floored and clamped to zero or above; value is clamped
to zero or above.

Example:
  stockroom add --name "Stapler No. 10" --supplier OfficeMart --stock 12 --value 120
  stockroom add --name "Notebook" --supplier "WriteWell Supplies" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "item name (required)")
	addCmd.Flags().StringVar(&addSupplier, "supplier", "", "supplier name (required)")
	addCmd.Flags().StringVar(&addStock, "stock", "0", "unit count")
	addCmd.Flags().StringVar(&addValue, "value", "0", "unit price")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("supplier")
}

func runAdd(cmd *cobra.Command, args []string) error {
	it, err := form.Parse(form.Input{
		Name:     addName,
		Supplier: addSupplier,
		Stock:    addStock,
		Value:    addValue,
	})
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	items, _ = form.Upsert(items, it)
	if err := store.Save(items); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if jsonOutput {
		return printJSON(it)
	}
	fmt.Printf("Added %q (%s)\n", it.Name, it.ID)
	return nil
}
