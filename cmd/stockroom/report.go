// Report command writes an HTML snapshot of the inventory view.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/portable"
	"github.com/billswift/stockroom/internal/query"
	"github.com/billswift/stockroom/pkg/types"
)

var (
	reportOut      string
	reportSearch   string
	reportSupplier string
	reportStock    string
	reportSort     string
	reportDesc     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an HTML snapshot of the inventory",
	Long: `Report renders the filtered, sorted view as a standalone HTML page
with the aggregate statistics and row highlighting for low and out-of-stock
items. All item text is escaped before insertion into the markup.

Example:
  stockroom report
  stockroom report --out /tmp/inventory.html --stock low`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "inventory.html", "output path, or - for stdout")
	reportCmd.Flags().StringVar(&reportSearch, "search", "", "substring match on name or supplier")
	reportCmd.Flags().StringVar(&reportSupplier, "supplier", "", "exact supplier match")
	reportCmd.Flags().StringVar(&reportStock, "stock", "", "stock state filter (low, out)")
	reportCmd.Flags().StringVar(&reportSort, "sort", types.SortByName, "sort key (name, supplier, stock, value)")
	reportCmd.Flags().BoolVar(&reportDesc, "desc", false, "sort descending")
}

func runReport(cmd *cobra.Command, args []string) error {
	filters := types.Filters{
		Query:    reportSearch,
		Supplier: reportSupplier,
		Stock:    reportStock,
	}
	if err := filters.Validate(); err != nil {
		return fmt.Errorf("%w: %q (use low or out)", types.ErrInvalidStockFilter, reportStock)
	}
	if !types.ValidSortKey(reportSort) {
		return fmt.Errorf("%w: %q (use name, supplier, stock, or value)", types.ErrInvalidSortKey, reportSort)
	}
	dir := types.SortAsc
	if reportDesc {
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
	view := query.View(items, filters, reportSort, dir, cfg.LowStockThreshold)

	r, err := newRenderer(cfg, false, false)
	if err != nil {
		return err
	}
	html := r.HTMLReport(items, view)

	if reportOut == "-" {
		fmt.Print(html)
		return nil
	}
	if err := portable.WriteFile(reportOut, []byte(html)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("Wrote report for %d item(s) to %s\n", len(view), reportOut)
	return nil
}
