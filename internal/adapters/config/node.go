package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config Loader Graft node. It
// registers the concrete type so the CLI can rebind the file path from the
// --config flag before anything loads.
const NodeID graft.ID = "adapter.config.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loader, error) {
			return NewLoader(), nil
		},
	})
}
