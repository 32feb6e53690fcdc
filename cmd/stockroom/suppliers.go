// Suppliers command lists the distinct suppliers in the collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/query"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List distinct suppliers",
	Long: `Suppliers prints the distinct supplier names present in the
collection, sorted lexicographically. Useful as input for list --supplier.

Example:
  stockroom suppliers
  stockroom suppliers --json`,
	RunE: runSuppliers,
}

func runSuppliers(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	suppliers := query.Suppliers(items)

	if jsonOutput {
		return printJSON(suppliers)
	}
	for _, s := range suppliers {
		fmt.Println(s)
	}
	return nil
}
