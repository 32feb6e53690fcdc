// Package sqlite implements the inventory Store on a local SQLite database.
// The collection is held as one JSON array under a single key in a
// key-value table, so persisted state stays a plain portable document and
// the whole collection is replaced on every save (last write wins).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/billswift/stockroom/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "stockroom.db"

// storeKey is the key the collection is persisted under.
const storeKey = "inv_items"

// schemaDDL creates the key-value table on open.
const schemaDDL = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// Store persists the inventory collection in a SQLite-backed key-value
// table. It implements types.Store.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
	log    *zap.Logger
}

// Option configures a Store on Open.
type Option func(*Store)

// WithLogger attaches a structured logger for open, seed, and recovery
// events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open creates the data directory if needed, opens the database, and applies
// the schema. The caller must Close the returned store.
func Open(cfg types.Config, opts ...Option) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}

// Load returns the persisted collection. Absent or unparsable state is
// treated as not present: the deterministic seed collection is generated,
// persisted immediately, and returned. Corruption is never surfaced as an
// error.
func (s *Store) Load() ([]types.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", storeKey).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		return s.seedLocked("absent")
	case err != nil:
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var items []types.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("persisted collection unparsable, reseeding", zap.Error(err))
		return s.seedLocked("corrupt")
	}
	return items, nil
}

// Save replaces the persisted collection with items.
func (s *Store) Save(items []types.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	return s.saveLocked(items)
}

// saveLocked marshals and upserts the collection. The caller must hold s.mu.
func (s *Store) saveLocked(items []types.Item) error {
	if items == nil {
		items = []types.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		storeKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// seedLocked generates the demo collection, persists it, and returns it.
// The caller must hold s.mu.
func (s *Store) seedLocked(reason string) ([]types.Item, error) {
	items := seedItems()
	if err := s.saveLocked(items); err != nil {
		return nil, fmt.Errorf("persist seed: %w", err)
	}
	s.log.Info("seeded demo collection",
		zap.String("reason", reason),
		zap.Int("items", len(items)),
	)
	return items, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
