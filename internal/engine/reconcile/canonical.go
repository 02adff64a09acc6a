package reconcile

import "go.trai.ch/pin/internal/core/domain"

// Canonicalize projects reconciled records onto the fixed lockfile tuple
// [group, artifact, version, jarName, sha1], dropping scope and exclusions,
// and sorts them by the canonical comparator. The resulting order is what
// makes the lockfile byte-stable across runs and machines.
func Canonicalize(records []domain.ReconciledDependency) []domain.LockfileEntry {
	entries := make([]domain.LockfileEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.LockfileEntry{
			Group:    r.Coordinate.Group.String(),
			Artifact: r.Coordinate.Artifact.String(),
			Version:  r.Coordinate.Version,
			JarName:  r.JarName,
			SHA1:     r.SHA1,
		})
	}
	domain.SortEntries(entries)
	return entries
}
