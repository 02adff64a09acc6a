package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/cas"
	"go.trai.ch/pin/internal/adapters/logger"
	"go.trai.ch/pin/internal/core/ports"
)

const (
	HasherNodeID     graft.ID = "adapter.fs.hasher"
	IdentifierNodeID graft.ID = "adapter.fs.identifier"
)

func init() {
	// Hasher Node
	graft.Register(graft.Node[ports.ArtifactHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactHasher, error) {
			return NewHasher(), nil
		},
	})

	// Identifier Node
	graft.Register(graft.Node[ports.ArtifactIdentifier]{
		ID:        IdentifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID, cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactIdentifier, error) {
			hasher, err := graft.Dep[ports.ArtifactHasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.HashStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewIdentifier(hasher, store, log), nil
		},
	})
}
