package query

import (
	"sort"

	"github.com/billswift/stockroom/pkg/types"
)

// Summary holds the aggregate statistics displayed above the table. They are
// always computed over the full, unfiltered collection.
type Summary struct {
	SKUs  int     // distinct items tracked
	Units int     // total stock on hand
	Worth float64 // sum of stock times unit value
}

// Stats computes the aggregate statistics for the collection.
func Stats(items []types.Item) Summary {
	s := Summary{SKUs: len(items)}
	for _, it := range items {
		s.Units += it.Stock
		s.Worth += it.Worth()
	}
	return s
}

// Suppliers returns the distinct suppliers present in the collection, sorted
// lexicographically.
func Suppliers(items []types.Item) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if !seen[it.Supplier] {
			seen[it.Supplier] = true
			out = append(out, it.Supplier)
		}
	}
	sort.Strings(out)
	return out
}

// SelectSupplier keeps the previous supplier selection when it is still among
// the options, and clears it otherwise. This mirrors rebuilding a filter
// dropdown after the collection changes.
func SelectSupplier(options []string, previous string) string {
	for _, opt := range options {
		if opt == previous {
			return previous
		}
	}
	return ""
}
