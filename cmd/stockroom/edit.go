// Edit command updates an existing item in place.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/form"
)

var (
	editName     string
	editSupplier string
	editStock    string
	editValue    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an item by ID",
	Long: `Edit replaces the fields of an existing item; the ID is retained.
Flags that are not given keep the item's current value. Editing an unknown
ID is a no-op.

Example:
  stockroom edit 0198d3a1 --stock 30
  stockroom edit 0198d3a1 --name "Stapler No. 11" --value 125.50`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new item name")
	editCmd.Flags().StringVar(&editSupplier, "supplier", "", "new supplier name")
	editCmd.Flags().StringVar(&editStock, "stock", "", "new unit count")
	editCmd.Flags().StringVar(&editValue, "value", "", "new unit price")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	current, ok := form.Find(items, id)
	if !ok {
		fmt.Printf("No item with ID %q; nothing changed.\n", id)
		return nil
	}

	in := form.Input{
		ID:       id,
		Name:     current.Name,
		Supplier: current.Supplier,
		Stock:    strconv.Itoa(current.Stock),
		Value:    strconv.FormatFloat(current.Value, 'f', -1, 64),
	}
	if cmd.Flags().Changed("name") {
		in.Name = editName
	}
	if cmd.Flags().Changed("supplier") {
		in.Supplier = editSupplier
	}
	if cmd.Flags().Changed("stock") {
		in.Stock = editStock
	}
	if cmd.Flags().Changed("value") {
		in.Value = editValue
	}

	it, err := form.Parse(in)
	if err != nil {
		return err
	}
	items, _ = form.Upsert(items, it)
	if err := store.Save(items); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if jsonOutput {
		return printJSON(it)
	}
	fmt.Printf("Updated %q (%s)\n", it.Name, it.ID)
	return nil
}
