// Package portable serializes the inventory collection to and from the
// portable JSON document format: a pretty-printed top-level array of item
// objects with no envelope or version field.
package portable

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/billswift/stockroom/pkg/types"
)

// DefaultFileName is the suggested name for exported documents.
const DefaultFileName = "inventory.json"

// ErrNotArray reports an import document whose top-level value is not a JSON
// array.
var ErrNotArray = errors.New("invalid JSON: expected an array")

// rawItem mirrors one element of the import document. Fields beyond these
// are ignored; numeric fields accept any JSON number and are coerced on
// mapping.
type rawItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Supplier string  `json:"supplier"`
	Stock    float64 `json:"stock"`
	Value    float64 `json:"value"`
}

// Export serializes the collection as a pretty-printed, UTF-8 JSON array.
func Export(items []types.Item) ([]byte, error) {
	if items == nil {
		items = []types.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return data, nil
}

// Import parses a portable document and maps each element into a well-formed
// Item: missing IDs are assigned, stock is floored and clamped, value is
// clamped. The top-level value must be an array; any parse or shape failure
// returns an error without producing a partial collection.
func Import(data []byte) ([]types.Item, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrNotArray
	}

	var raw []rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	items := make([]types.Item, len(raw))
	for i, r := range raw {
		id := r.ID
		if id == "" {
			id = types.NewID()
		}
		items[i] = types.Item{
			ID:       id,
			Name:     r.Name,
			Supplier: r.Supplier,
			Stock:    types.ClampStock(r.Stock),
			Value:    types.ClampValue(r.Value),
		}
	}
	return items, nil
}
