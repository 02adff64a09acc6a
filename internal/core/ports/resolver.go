// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// DependencyResolver is the external Maven-compatible resolver boundary. Both
// queries must be issued with the same profile for reconciliation to produce
// aligned views.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// ResolveArtifacts returns the local file path of every artifact included
	// for the given profile.
	ResolveArtifacts(ctx context.Context, maven domain.MavenConfig, profile domain.Profile) ([]string, error)

	// DependencyHierarchy returns the scope-annotated transitive hierarchy
	// for the same profile, as a forest of top-level dependencies.
	DependencyHierarchy(ctx context.Context, maven domain.MavenConfig, profile domain.Profile) ([]*domain.Node, error)
}
