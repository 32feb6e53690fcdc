// Stats command prints the aggregate statistics for the full collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billswift/stockroom/internal/query"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show SKU count, total units, and total worth",
	Long: `Stats aggregates the full collection regardless of filters: the
number of tracked SKUs, the total unit count, and the total worth (stock
times unit value, summed).

Example:
  stockroom stats
  stockroom stats --json`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	s := query.Stats(items)

	if jsonOutput {
		return printJSON(map[string]any{
			"skus":  s.SKUs,
			"units": s.Units,
			"worth": s.Worth,
		})
	}

	r, err := newRenderer(cfg, false, false)
	if err != nil {
		return err
	}
	fmt.Print(r.Stats(s))
	return nil
}
