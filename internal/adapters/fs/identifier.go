package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactIdentifier = (*Identifier)(nil)

// Identifier derives resolved artifact records from repository file paths.
// Fingerprints are memoized in the hash store keyed by the xxhash of the
// path, validated against file size and mtime; artifacts in the local
// repository do not change content under the same path between passes.
type Identifier struct {
	hasher ports.ArtifactHasher
	store  ports.HashStore
	logger ports.Logger
}

// NewIdentifier creates a new Identifier.
func NewIdentifier(hasher ports.ArtifactHasher, store ports.HashStore, logger ports.Logger) *Identifier {
	return &Identifier{hasher: hasher, store: store, logger: logger}
}

// Identify returns one record per path, in input order. The first path that
// does not lie under root, or cannot be read, fails the whole call.
func (i *Identifier) Identify(ctx context.Context, paths []string, root string) ([]domain.ResolvedArtifact, error) {
	records := make([]domain.ResolvedArtifact, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "identification interrupted")
		}

		coord, jarName, err := domain.CoordinateFromPath(path, root)
		if err != nil {
			return nil, err
		}

		sha, err := i.fingerprint(path)
		if err != nil {
			return nil, err
		}

		records = append(records, domain.ResolvedArtifact{
			Coordinate: coord,
			JarName:    jarName,
			SHA1:       sha,
		})
	}

	if err := i.store.Flush(); err != nil {
		// A stale cache only costs re-hashing on the next pass.
		i.logger.Warn("failed to persist hash cache: " + err.Error())
	}

	return records, nil
}

func (i *Identifier) fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}

	key := cacheKey(path)
	if entry, ok := i.store.Get(key); ok && entry.Size == info.Size() && entry.MTime == info.ModTime().UnixNano() {
		return entry.SHA1, nil
	}

	sha, err := i.hasher.SHA1(path)
	if err != nil {
		return "", err
	}

	if err := i.store.Put(key, ports.HashEntry{
		SHA1:  sha,
		Size:  info.Size(),
		MTime: info.ModTime().UnixNano(),
	}); err != nil {
		return "", err
	}

	return sha, nil
}

func cacheKey(path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))
}
