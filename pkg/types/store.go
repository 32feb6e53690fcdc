package types

import "errors"

// Store lifecycle errors.
var ErrStoreClosed = errors.New("store is closed")

// Store persists the inventory collection to a local backend. Load recovers
// silently from absent or corrupt state by seeding and persisting a demo
// collection; callers never observe corruption as an error. Save overwrites
// the persisted collection wholesale; the last write wins.
type Store interface {
	// Load returns the persisted collection, seeding it on first use or
	// after corruption.
	Load() ([]Item, error)

	// Save replaces the persisted collection with items.
	Save(items []Item) error

	// Close releases backend resources. Idempotent: multiple calls
	// succeed. After Close, Load and Save return ErrStoreClosed.
	Close() error
}
