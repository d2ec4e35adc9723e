package snapshot

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/velvetlane/storefront/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore implements SnapshotStore on a single SQLite database file.
// The database survives restarts; reopening the same DataDir rehydrates
// every slot written by previous sessions.
type SQLiteStore struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// NewSQLiteStore creates a new SQLite snapshot store.
// The store is not open; call Open with a Config to initialize.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Open initializes the store with the given configuration. Creates DataDir
// if it does not exist and applies the schema. Returns ErrAlreadyOpen if
// already open.
func (s *SQLiteStore) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, "storefront.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true
	return nil
}

// Close releases the database connection. Idempotent.
// After Close, Load and Save return ErrStoreClosed.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil // idempotent
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.open = false
	return nil
}

// Load returns the payload stored in the named slot.
// Returns ErrSlotNotFound if the slot has never been written.
func (s *SQLiteStore) Load(slot string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	var payload string
	err := s.db.QueryRow("SELECT payload FROM slots WHERE slot = ?", slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, types.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return json.RawMessage(payload), nil
}

// Save replaces the payload of the named slot, creating the row on first
// write. Last write wins.
func (s *SQLiteStore) Save(slot string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		"INSERT INTO slots (slot, payload, updated_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at",
		slot, string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

// Compile-time interface check.
var _ types.SnapshotStore = (*SQLiteStore)(nil)
