// Package reconcile implements the dependency reconciliation engine: joining
// the resolved-artifact view with the hierarchy view into one canonical record
// per dependency.
package reconcile

import (
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reconcile joins resolved artifacts with hierarchy entries on their
// (group, artifact) key and resolves the version discrepancy between the two
// views per dependency.
//
// Hierarchy occurrences are collapsed by coordinate key, first occurrence
// winning; pre-order flattening guarantees that is the shallowest one. An
// artifact without a hierarchy counterpart, or a hierarchy key without an
// artifact, aborts the whole pass: a lockfile built from an incomplete join
// would be actively misleading.
//
// Output order follows the resolved input; callers sort via Canonicalize.
func Reconcile(resolved []domain.ResolvedArtifact, hierarchy []domain.HierarchyEntry) ([]domain.ReconciledDependency, error) {
	byKey := make(map[domain.GA]domain.HierarchyEntry, len(hierarchy))
	for _, entry := range hierarchy {
		key := entry.Coordinate.Key()
		if _, seen := byKey[key]; !seen {
			byKey[key] = entry
		}
	}

	joined := make(map[domain.GA]bool, len(byKey))
	records := make([]domain.ReconciledDependency, 0, len(resolved))

	for _, artifact := range resolved {
		key := artifact.Coordinate.Key()
		entry, ok := byKey[key]
		if !ok {
			err := zerr.With(domain.ErrUnjoinableDependency, "coordinate", artifact.Coordinate.String())
			return nil, zerr.With(err, "missing_from", "hierarchy")
		}
		joined[key] = true

		version, err := domain.ReconcileVersions(artifact.Coordinate.Version, entry.Coordinate.Version)
		if err != nil {
			return nil, zerr.With(err, "coordinate", key.String())
		}

		records = append(records, domain.ReconciledDependency{
			Coordinate: domain.Coordinate{
				Group:    key.Group,
				Artifact: key.Artifact,
				Version:  version,
			},
			JarName:    artifact.JarName,
			SHA1:       artifact.SHA1,
			Scope:      entry.Scope,
			Exclusions: entry.Exclusions,
		})
	}

	// The join must be total in both directions.
	for _, entry := range hierarchy {
		key := entry.Coordinate.Key()
		if !joined[key] {
			err := zerr.With(domain.ErrUnjoinableDependency, "coordinate", entry.Coordinate.String())
			return nil, zerr.With(err, "missing_from", "resolved artifacts")
		}
	}

	return records, nil
}
