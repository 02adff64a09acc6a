package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const snapshotSuffix = "-SNAPSHOT"

// ReconcileVersions resolves the precision discrepancy between the version a
// resolved artifact path reports and the one the dependency hierarchy reports
// for the same (group, artifact).
//
// Byte-equal versions are kept as-is. If exactly one side carries the
// -SNAPSHOT suffix and both sides agree on the prefix before the first dash,
// the two are the same logical version and the non-SNAPSHOT, build-numbered
// side wins: "1.2.0-20230101.120000-3" over "1.2.0-SNAPSHOT". Anything else
// is ErrVersionConflict naming both candidates.
//
// The prefix heuristic is best-effort; either view may be the one carrying
// the expanded build qualifier. It lives here, alone, so it can be replaced
// without touching the reconciler.
func ReconcileVersions(resolved, hierarchy string) (string, error) {
	if resolved == hierarchy {
		return resolved, nil
	}

	rSnap := strings.HasSuffix(resolved, snapshotSuffix)
	hSnap := strings.HasSuffix(hierarchy, snapshotSuffix)
	if rSnap != hSnap && baseVersion(resolved) == baseVersion(hierarchy) {
		if rSnap {
			return hierarchy, nil
		}
		return resolved, nil
	}

	err := zerr.With(ErrVersionConflict, "resolved_version", resolved)
	return "", zerr.With(err, "hierarchy_version", hierarchy)
}

// baseVersion strips everything after the first dash: "1.2.0-SNAPSHOT" and
// "1.2.0-20230101.120000-3" both reduce to "1.2.0".
func baseVersion(v string) string {
	if i := strings.IndexByte(v, '-'); i >= 0 {
		return v[:i]
	}
	return v
}
