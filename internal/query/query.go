// Package query derives filtered, sorted views of the inventory collection.
// All functions are pure: they never mutate their input and perform no I/O,
// so the engine can be tested without a store or a rendering surface.
package query

import (
	"sort"
	"strings"

	"github.com/billswift/stockroom/pkg/types"
)

// Matches reports whether the item satisfies all three filter conditions.
// The conditions are independent and AND-ed: text query (case-insensitive
// substring on name or supplier), exact supplier, and stock state against
// threshold.
func Matches(it types.Item, f types.Filters, threshold int) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q != "" &&
		!strings.Contains(strings.ToLower(it.Name), q) &&
		!strings.Contains(strings.ToLower(it.Supplier), q) {
		return false
	}
	if f.Supplier != "" && it.Supplier != f.Supplier {
		return false
	}
	switch f.Stock {
	case types.StockLow:
		return it.Stock > 0 && it.Stock < threshold
	case types.StockOut:
		return it.Stock == 0
	}
	return true
}

// Apply returns the items that satisfy the filters, in input order.
func Apply(items []types.Item, f types.Filters, threshold int) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, f, threshold) {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a sorted copy of items. Stock and value compare numerically;
// other keys compare as case-insensitive strings. The sort is stable, so
// ties keep their relative input order.
func Sort(items []types.Item, key, dir string) []types.Item {
	out := make([]types.Item, len(items))
	copy(out, items)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == types.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// lessFunc returns the ascending comparison for the given sort key.
func lessFunc(key string) func(a, b types.Item) bool {
	switch key {
	case types.SortByStock:
		return func(a, b types.Item) bool { return a.Stock < b.Stock }
	case types.SortByValue:
		return func(a, b types.Item) bool { return a.Value < b.Value }
	case types.SortBySupplier:
		return func(a, b types.Item) bool {
			return strings.ToLower(a.Supplier) < strings.ToLower(b.Supplier)
		}
	default:
		return func(a, b types.Item) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

// View filters then sorts the collection. This is the single derivation used
// by every rendering surface.
func View(items []types.Item, f types.Filters, key, dir string, threshold int) []types.Item {
	return Sort(Apply(items, f, threshold), key, dir)
}

// NextSort resolves the sort state after the user selects a column.
// Selecting the current key flips the direction; selecting a new key resets
// to ascending.
func NextSort(curKey, curDir, selected string) (key, dir string) {
	if selected == curKey {
		if curDir == types.SortAsc {
			return curKey, types.SortDesc
		}
		return curKey, types.SortAsc
	}
	return selected, types.SortAsc
}
