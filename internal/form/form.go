// Package form translates raw user input into create, update, and delete
// operations on the inventory collection. It owns the numeric coercion and
// non-empty validation rules; invalid input never reaches the store.
package form

import (
	"strconv"
	"strings"

	"github.com/billswift/stockroom/pkg/types"
)

// Input holds the raw field values of an add or edit form. A blank ID means
// "assign a new one on submit"; a non-blank ID is retained and decides
// between replace and append.
type Input struct {
	ID       string
	Name     string
	Supplier string
	Stock    string
	Value    string
}

// Parse validates and coerces the input into a well-formed Item. Name and
// supplier are trimmed and must be non-empty; stock is floored and clamped
// to zero or above; value is clamped without flooring. Non-numeric quantity
// input coerces to 0.
func Parse(in Input) (types.Item, error) {
	it := types.Item{
		ID:       strings.TrimSpace(in.ID),
		Name:     strings.TrimSpace(in.Name),
		Supplier: strings.TrimSpace(in.Supplier),
		Stock:    types.ClampStock(parseNumber(in.Stock)),
		Value:    types.ClampValue(parseNumber(in.Value)),
	}
	if err := it.Validate(); err != nil {
		return types.Item{}, err
	}
	if it.ID == "" {
		it.ID = types.NewID()
	}
	return it, nil
}

// parseNumber coerces a raw field value to a float. Blank or unparsable
// input becomes 0 rather than an error; clamping handles the rest.
func parseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

// Upsert replaces the item with a matching ID, or appends when the ID is new.
// It returns the updated collection and whether an existing item was
// replaced. The input slice is not mutated.
func Upsert(items []types.Item, it types.Item) ([]types.Item, bool) {
	out := make([]types.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == it.ID {
			out[i] = it
			return out, true
		}
	}
	return append(out, it), false
}

// Remove deletes the item with the given ID. An unknown ID is a no-op; the
// returned flag reports whether anything was removed. The input slice is not
// mutated.
func Remove(items []types.Item, id string) ([]types.Item, bool) {
	out := make([]types.Item, 0, len(items))
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// Find returns the item with the given ID, if present.
func Find(items []types.Item, id string) (types.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return types.Item{}, false
}
