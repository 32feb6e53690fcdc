package types

import "errors"

// Stock-state filter values. The empty string matches every item; "low"
// matches items with 0 < stock < threshold; "out" matches items with zero
// stock.
const (
	StockAny = ""
	StockLow = "low"
	StockOut = "out"
)

// validStockFilters is the set of recognized stock-state filter values.
var validStockFilters = map[string]bool{
	StockAny: true,
	StockLow: true,
	StockOut: true,
}

// Sort keys. Stock and value sort numerically; name and supplier sort as
// case-insensitive strings.
const (
	SortByName     = "name"
	SortBySupplier = "supplier"
	SortByStock    = "stock"
	SortByValue    = "value"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// validSortKeys is the set of recognized sort keys.
var validSortKeys = map[string]bool{
	SortByName:     true,
	SortBySupplier: true,
	SortByStock:    true,
	SortByValue:    true,
}

// View parameter validation errors.
var (
	ErrInvalidStockFilter = errors.New("unknown stock filter")
	ErrInvalidSortKey     = errors.New("unknown sort key")
)

// Filters holds the three independent, AND-ed filter conditions applied when
// deriving a view of the collection.
type Filters struct {
	Query    string // case-insensitive substring match on name or supplier
	Supplier string // exact supplier match; empty matches all
	Stock    string // one of StockAny, StockLow, StockOut
}

// Validate checks that the stock-state filter value is recognized.
func (f Filters) Validate() error {
	if !validStockFilters[f.Stock] {
		return ErrInvalidStockFilter
	}
	return nil
}

// ValidSortKey reports whether key names a sortable column.
func ValidSortKey(key string) bool {
	return validSortKeys[key]
}
