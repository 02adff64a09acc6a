package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// ArtifactIdentifier derives coordinate, filename and content hash for
// resolved artifact files under the local repository root.
//
//go:generate go run go.uber.org/mock/mockgen -source=identifier.go -destination=mocks/mock_identifier.go -package=mocks
type ArtifactIdentifier interface {
	// Identify returns one record per path, in input order. It fails on the
	// first path that does not lie under root or cannot be hashed.
	Identify(ctx context.Context, paths []string, root string) ([]domain.ResolvedArtifact, error)
}
