// List command renders the filtered, sorted inventory view.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

var (
	listSearch   string
	listSupplier string
	listStock    string
	listSort     string
	listDesc     bool
	listCompact  bool
	listNoColor  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items matching the active filters",
	Long: `List renders the inventory table with aggregate statistics.

The three filters are independent and combined with AND: a case-insensitive
text search over name and supplier, an exact supplier match, and a stock
state (low = below the configured threshold, out = zero stock).

Example:
  stockroom list
  stockroom list --search pens --stock low
  stockroom list --supplier "OfficeMart" --sort value --desc
  stockroom list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring match on name or supplier")
	listCmd.Flags().StringVar(&listSupplier, "supplier", "", "exact supplier match")
	listCmd.Flags().StringVar(&listStock, "stock", "", "stock state filter (low, out)")
	listCmd.Flags().StringVar(&listSort, "sort", types.SortByName, "sort key (name, supplier, stock, value)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().BoolVar(&listCompact, "compact", false, "compact table output")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "disable row highlighting")
}

func runList(cmd *cobra.Command, args []string) error {
	filters := types.Filters{
		Query:    listSearch,
		Supplier: listSupplier,
		Stock:    listStock,
	}
	if err := filters.Validate(); err != nil {
		return fmt.Errorf("%w: %q (use low or out)", types.ErrInvalidStockFilter, listStock)
	}
	if !types.ValidSortKey(listSort) {
		return fmt.Errorf("%w: %q (use name, supplier, stock, or value)", types.ErrInvalidSortKey, listSort)
	}
	dir := types.SortAsc
	if listDesc {
		dir = types.SortDesc
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	view := query.View(items, filters, listSort, dir, cfg.LowStockThreshold)

	if jsonOutput {
		return printJSON(view)
	}

	r, err := newRenderer(cfg, !listNoColor, listCompact)
	if err != nil {
		return err
	}
	fmt.Print(r.Report(items, view))
	return nil
}
