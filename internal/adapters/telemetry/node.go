package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/telemetry/progrock"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

// progressEnv selects the progrock recorder when set to a non-empty value.
// The default is the noop adapter so scripted runs stay quiet.
const progressEnv = "PIN_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv(progressEnv) != "" {
				return progrock.New(), nil
			}
			return NewNoop(), nil
		},
	})
}
