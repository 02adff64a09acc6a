package domain

// HierarchyEntry is one scope/exclusion-annotated dependency occurrence from
// the resolver's transitive hierarchy. The version here is the one the
// hierarchy reports, which for SNAPSHOT dependencies may be less precise than
// the resolved artifact path.
type HierarchyEntry struct {
	Coordinate Coordinate

	// Scope is the build phase the dependency applies to ("test",
	// "provided", ...). Empty means compile.
	Scope string

	// Exclusions are the transitive dependencies this occurrence declares
	// must not be pulled in.
	Exclusions []Exclusion
}

// Node is one dependency in the resolver's nested hierarchy together with its
// transitive dependents. The hierarchy is cycle-free: Maven resolution has
// already broken any cycles before it reaches us.
type Node struct {
	Entry    HierarchyEntry
	Children []*Node
}

// Flatten returns the subtree rooted at n as a pre-order sequence: the node
// itself, then every child subtree in insertion order. A parent therefore
// always precedes its transitive children. Duplicate coordinates across
// branches are preserved; deduplication happens at the join, by coordinate
// equality, never by dropping hierarchy occurrences.
func (n *Node) Flatten() []HierarchyEntry {
	var out []HierarchyEntry
	n.appendTo(&out)
	return out
}

func (n *Node) appendTo(out *[]HierarchyEntry) {
	*out = append(*out, n.Entry)
	for _, child := range n.Children {
		child.appendTo(out)
	}
}

// FlattenAll flattens a forest of top-level dependencies in order.
func FlattenAll(nodes []*Node) []HierarchyEntry {
	var out []HierarchyEntry
	for _, n := range nodes {
		n.appendTo(&out)
	}
	return out
}

// RawEntry is the unparsed form of a hierarchy occurrence as emitted by a
// resolver adapter: a dependency descriptor, a version, and optional scope
// and exclusion annotations.
type RawEntry struct {
	Descriptor string
	Version    string
	Scope      string
	Exclusions []string
}

// ParseRawEntry turns a raw resolver entry into a HierarchyEntry. The
// descriptor and each exclusion descriptor follow the optionally-namespaced
// form handled by ParseDescriptor.
func ParseRawEntry(raw RawEntry) HierarchyEntry {
	group, artifact := ParseDescriptor(raw.Descriptor)
	entry := HierarchyEntry{
		Coordinate: Coordinate{
			Group:    group,
			Artifact: artifact,
			Version:  raw.Version,
		},
		Scope: raw.Scope,
	}
	for _, desc := range raw.Exclusions {
		g, a := ParseDescriptor(desc)
		entry.Exclusions = append(entry.Exclusions, Exclusion{Group: g, Artifact: a})
	}
	return entry
}
