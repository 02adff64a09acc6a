package cas

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the HashStore Graft node.
const NodeID graft.ID = "adapter.cas.store"

func init() {
	graft.Register(graft.Node[ports.HashStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HashStore, error) {
			return NewStore(defaultCachePath()), nil
		},
	})
}

func defaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "pin", "hashes.json")
	}
	return filepath.Join(".pin-cache", "hashes.json")
}
