// Demo collection seeded on first run or after corrupt persisted state.
package sqlite

import "github.com/billswift/stockroom/pkg/types"

// seedEntry describes one demo item. IDs are generated at seed time; the
// content itself is fixed.
type seedEntry struct {
	name     string
	supplier string
	stock    int
	value    float64
}

// seedEntries covers the interesting stock states out of the box: one
// out-of-stock item and one below the default low-stock threshold.
var seedEntries = []seedEntry{
	{"A4 Paper Ream (500 sheets)", "Acme Traders", 25, 230},
	{"Blue Ball Pens (Box of 50)", "WriteWell Supplies", 8, 175},
	{"Stapler No. 10", "OfficeMart", 0, 120},
	{"Notebook (200 pages)", "WriteWell Supplies", 42, 85},
	{"Whiteboard Marker (Pack of 10)", "OfficeMart", 12, 260},
}

// seedItems builds the demo collection with fresh IDs.
func seedItems() []types.Item {
	items := make([]types.Item, len(seedEntries))
	for i, e := range seedEntries {
		items[i] = types.Item{
			ID:       types.NewID(),
			Name:     e.name,
			Supplier: e.supplier,
			Stock:    e.stock,
			Value:    e.value,
		}
	}
	return items
}
