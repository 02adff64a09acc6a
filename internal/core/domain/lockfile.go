package domain

import (
	"sort"
	"strings"
)

// LockfileEntry is the persisted form of one reconciled dependency: the
// ordered tuple [group, artifact, version, jarName, sha1]. Scope and
// exclusions are deliberately absent; the lockfile pins artifacts, not
// build-time topology.
type LockfileEntry struct {
	Group    string
	Artifact string
	Version  string
	JarName  string
	SHA1     string
}

// Fields returns the entry as its ordered 5-tuple.
func (e LockfileEntry) Fields() [5]string {
	return [5]string{e.Group, e.Artifact, e.Version, e.JarName, e.SHA1}
}

// String renders the entry as its tab-separated line form, the same shape it
// takes in the lockfile. Echoed output is therefore byte-identical to what a
// freshen would persist.
func (e LockfileEntry) String() string {
	f := e.Fields()
	return strings.Join(f[:], "\t")
}

// CompareEntries is the canonical lockfile ordering: lexicographic across
// group, artifact, version, jarName and sha1, in that order. It is the one
// total order applied both when writing the lockfile and when comparing
// against it; nothing may rely on container default ordering instead.
func CompareEntries(a, b LockfileEntry) int {
	af, bf := a.Fields(), b.Fields()
	for i := range af {
		if c := strings.Compare(af[i], bf[i]); c != 0 {
			return c
		}
	}
	return 0
}

// SortEntries sorts entries in place by CompareEntries. The sort is stable so
// that fully equal entries keep their input order.
func SortEntries(entries []LockfileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return CompareEntries(entries[i], entries[j]) < 0
	})
}

// Mismatch is the first point of divergence between the computed entries and
// the persisted lockfile. Line is 1-based. A nil Computed means the lockfile
// has extra trailing entries; a nil Persisted means it is missing entries.
type Mismatch struct {
	Line      int
	Computed  *LockfileEntry
	Persisted *LockfileEntry
}

// Diff compares computed and persisted entry sequences position by position
// and returns the first divergence, or nil if the sequences are identical.
// The persisted sequence is taken in its physical order; it was written by
// the same canonical sort and is not re-sorted on read.
func Diff(computed, persisted []LockfileEntry) *Mismatch {
	for i := range min(len(computed), len(persisted)) {
		if computed[i] != persisted[i] {
			return &Mismatch{Line: i + 1, Computed: &computed[i], Persisted: &persisted[i]}
		}
	}
	switch {
	case len(computed) > len(persisted):
		i := len(persisted)
		return &Mismatch{Line: i + 1, Computed: &computed[i]}
	case len(persisted) > len(computed):
		i := len(computed)
		return &Mismatch{Line: i + 1, Persisted: &persisted[i]}
	}
	return nil
}
