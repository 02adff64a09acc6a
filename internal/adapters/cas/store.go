// Package cas implements the persisted artifact fingerprint cache.
package cas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashStore = (*Store)(nil)

// Store implements ports.HashStore using a flat JSON file. Entries live in
// memory during a pass; Flush persists them once at the end. A missing or
// corrupt cache file is treated as empty: the cache can always be rebuilt by
// re-hashing.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]ports.HashEntry
	dirty bool
}

// NewStore creates a new HashStore backed by the file at the given path.
func NewStore(path string) *Store {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]ports.HashEntry),
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		// Corrupt cache, start over.
		s.cache = make(map[string]ports.HashEntry)
	}
}

// Get returns the cached entry for the key, if any.
func (s *Store) Get(key string) (ports.HashEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	return entry, ok
}

// Put records an entry under the key.
func (s *Store) Put(key string, entry ports.HashEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = entry
	s.dirty = true
	return nil
}

// Flush persists the cache if anything changed since load.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal hash cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for hash cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write hash cache")
	}

	s.dirty = false
	return nil
}
