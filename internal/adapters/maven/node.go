package maven

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/shell"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the Maven resolver Graft node.
const NodeID graft.ID = "adapter.maven.resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(executor), nil
		},
	})
}
