package ports

// HashEntry is a memoized artifact fingerprint together with the file
// attributes it was computed against.
type HashEntry struct {
	SHA1  string `json:"sha1"`
	Size  int64  `json:"size"`
	MTime int64  `json:"mtime_unix_nano"`
}

// HashStore caches artifact fingerprints across passes. Implementations are
// free to drop entries at any time; a miss only costs a re-hash.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HashStore interface {
	// Get returns the cached entry for the key, if any.
	Get(key string) (HashEntry, bool)

	// Put records an entry under the key.
	Put(key string, entry HashEntry) error

	// Flush persists the cache. Called once at the end of a pass.
	Flush() error
}
