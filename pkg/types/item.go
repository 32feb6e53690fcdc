package types

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Item is a stock-keeping unit tracked by the inventory.
type Item struct {
	ID       string  `json:"id"`       // opaque unique identifier, immutable after creation
	Name     string  `json:"name"`     // display name, non-empty
	Supplier string  `json:"supplier"` // supplier name, non-empty, used for grouping
	Stock    int     `json:"stock"`    // unit count, never negative
	Value    float64 `json:"value"`    // unit price, never negative
}

// Item validation errors, surfaced at the form boundary.
var (
	ErrNameRequired     = errors.New("item name must not be empty")
	ErrSupplierRequired = errors.New("supplier must not be empty")
)

// ErrItemNotFound reports a lookup for an ID that is not in the collection.
var ErrItemNotFound = errors.New("item not found")

// ClampStock floors a raw stock quantity and clamps it to zero or above.
// NaN and infinities coerce to 0.
func ClampStock(raw float64) int {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	n := int(math.Floor(raw))
	if n < 0 {
		return 0
	}
	return n
}

// ClampValue clamps a raw unit price to zero or above without flooring.
// NaN and infinities coerce to 0.
func ClampValue(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0
	}
	return raw
}

// Validate checks the item invariants that the form boundary enforces.
// Numeric fields are expected to be clamped before Validate is called.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(it.Supplier) == "" {
		return ErrSupplierRequired
	}
	return nil
}

// Worth returns the total worth of the item's stock on hand.
func (it Item) Worth() float64 {
	return float64(it.Stock) * it.Value
}

// NewID generates a UUIDv7 item identifier, falling back to UUIDv4 if v7
// generation fails.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
