// File backend for the snapshot store. Each slot is a standalone JSON file
// written with the temp-file, fsync, rename pattern so a crash mid-write
// never corrupts the previous snapshot.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/velvetlane/storefront/pkg/types"
)

// FileStore implements SnapshotStore with one JSON file per slot.
type FileStore struct {
	mu      sync.RWMutex
	open    bool
	dataDir string
}

// NewFileStore creates a new file snapshot store.
// The store is not open; call Open with a Config to initialize.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Open initializes the store, creating DataDir if it does not exist.
// Returns ErrAlreadyOpen if already open.
func (s *FileStore) Open(config types.Config) error {
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

	s.dataDir = dataDir
	s.open = true
	return nil
}

// Close marks the store closed. Idempotent; there are no resources to
// release beyond refusing further operations.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	return nil
}

// Load reads the slot file. Returns ErrSlotNotFound if it does not exist.
func (s *FileStore) Load(slot string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	data, err := os.ReadFile(s.slotPath(slot))
	if os.IsNotExist(err) {
		return nil, types.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return json.RawMessage(data), nil
}

// Save atomically replaces the slot file.
func (s *FileStore) Save(slot string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if err := writeFileAtomic(s.slotPath(slot), payload); err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

// slotPath returns the file path for a slot name.
func (s *FileStore) slotPath(slot string) string {
	return filepath.Join(s.dataDir, slot+".json")
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Compile-time interface check.
var _ types.SnapshotStore = (*FileStore)(nil)
