package ports

import "go.trai.ch/pin/internal/core/domain"

// LockfileStore persists canonical entries as a line-oriented text file.
// Write and Read must round-trip byte-identically.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile_store.go -destination=mocks/mock_lockfile_store.go -package=mocks
type LockfileStore interface {
	// Read returns the persisted entries in the file's physical order.
	Read(path string) ([]domain.LockfileEntry, error)

	// Write overwrites the lockfile with the given entries, one per line,
	// atomically.
	Write(path string, entries []domain.LockfileEntry) error
}
