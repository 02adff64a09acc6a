// Package maven adapts the external Maven-compatible resolver. It shells out
// to the configured command and parses the text output of the dependency
// plugin's list and tree goals. Resolution itself is Maven's problem; this
// adapter only turns its answers into the two views the reconciler joins.
package maven

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyResolver = (*Resolver)(nil)

// Resolver implements ports.DependencyResolver by invoking Maven.
type Resolver struct {
	executor ports.Executor
}

// NewResolver creates a new Resolver.
func NewResolver(executor ports.Executor) *Resolver {
	return &Resolver{executor: executor}
}

// ResolveArtifacts runs dependency:list and returns the absolute path of
// every artifact file selected by the profile.
func (r *Resolver) ResolveArtifacts(ctx context.Context, maven domain.MavenConfig, profile domain.Profile) ([]string, error) {
	argv := append(append([]string{}, maven.Command...),
		"dependency:list",
		"-DoutputAbsoluteArtifactFilename=true",
		"-DincludeScope="+includeScope(profile),
	)

	out, err := r.executor.Output(ctx, ".", argv)
	if err != nil {
		return nil, zerr.Wrap(err, "dependency list failed")
	}

	return ParseList(string(out)), nil
}

// DependencyHierarchy runs dependency:tree and returns the scope-annotated
// transitive hierarchy for the same profile.
func (r *Resolver) DependencyHierarchy(ctx context.Context, maven domain.MavenConfig, profile domain.Profile) ([]*domain.Node, error) {
	argv := append(append([]string{}, maven.Command...),
		"dependency:tree",
		"-Dscope="+includeScope(profile),
	)

	out, err := r.executor.Output(ctx, ".", argv)
	if err != nil {
		return nil, zerr.Wrap(err, "dependency tree failed")
	}

	return ParseTree(string(out))
}

// includeScope maps a profile to Maven's scope selector. "test" is Maven's
// name for the full graph; "runtime" covers only what ships in the package.
func includeScope(profile domain.Profile) string {
	if profile == domain.ProfilePackaged {
		return "runtime"
	}
	return "test"
}
