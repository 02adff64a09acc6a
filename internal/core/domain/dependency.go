package domain

// ReconciledDependency is the merged record for one dependency: the coordinate
// with its precision-resolved version, the artifact identity from the resolved
// view, and the build-time annotations from the hierarchy view. A record with
// either side missing is an error at the join, never a partial result.
type ReconciledDependency struct {
	Coordinate Coordinate

	// JarName and SHA1 come only from the resolved artifact view.
	JarName string
	SHA1    string

	// Scope and Exclusions come only from the hierarchy view.
	Scope      string
	Exclusions []Exclusion
}
