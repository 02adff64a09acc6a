// Package domain contains the core model for dependency reconciliation:
// coordinates, the resolver hierarchy, the version precision rule and the
// canonical lockfile form.
package domain

import "strings"

// Coordinate identifies a dependency by group, artifact and version.
// Group and artifact are case-sensitive; version is a free-form string that
// may carry a -SNAPSHOT suffix or a timestamped build qualifier.
type Coordinate struct {
	Group    InternedString
	Artifact InternedString
	Version  string
}

// GA is the (group, artifact) join key used to match the two resolver views.
// Version is deliberately excluded: the views disagree on version precision
// (see ReconcileVersions).
type GA struct {
	Group    InternedString
	Artifact InternedString
}

// Key returns the (group, artifact) join key for the coordinate.
func (c Coordinate) Key() GA {
	return GA{Group: c.Group, Artifact: c.Artifact}
}

// String renders the coordinate as "group/artifact version".
func (c Coordinate) String() string {
	return c.Group.String() + "/" + c.Artifact.String() + " " + c.Version
}

// String renders the join key as "group/artifact".
func (k GA) String() string {
	return k.Group.String() + "/" + k.Artifact.String()
}

// Exclusion is a coordinate without a version: a dependency that a consumer
// declares must not be pulled in transitively.
type Exclusion struct {
	Group    InternedString
	Artifact InternedString
}

// ParseDescriptor splits a dependency descriptor into group and artifact.
// A namespaced descriptor "group/name" maps to (group, name). A bare
// descriptor "name" means group and artifact are the same, matching
// single-segment coordinates such as "clojure" for clojure/clojure.
func ParseDescriptor(desc string) (group, artifact InternedString) {
	if i := strings.IndexByte(desc, '/'); i >= 0 {
		return NewInternedString(desc[:i]), NewInternedString(desc[i+1:])
	}
	s := NewInternedString(desc)
	return s, s
}
