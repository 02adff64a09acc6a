package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ResolvedArtifact is a dependency as seen through its resolved artifact file:
// coordinate plus the artifact filename and a SHA-1 content fingerprint.
// The coordinate here carries the precise version encoded in the repository
// path, which for SNAPSHOT dependencies may be a timestamped build qualifier.
type ResolvedArtifact struct {
	Coordinate Coordinate
	JarName    string
	SHA1       string
}

// CoordinateFromPath derives a coordinate and artifact filename from a file
// path known to live under the local repository root, using the standard
// group-segments/artifact/version/filename layout.
//
// The root must be a strict prefix of the path and at least four segments must
// remain below it; otherwise ErrPathNotRelocatable is returned. This guards
// against artifacts staged outside the repository layout, such as plugin-local
// jars.
func CoordinateFromPath(file, root string) (Coordinate, string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return Coordinate{}, "", zerr.With(zerr.With(ErrPathNotRelocatable, "path", file), "root", root)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return Coordinate{}, "", zerr.With(zerr.With(ErrPathNotRelocatable, "path", file), "root", root)
	}

	segs := strings.Split(rel, "/")
	if len(segs) < 4 {
		return Coordinate{}, "", zerr.With(zerr.With(ErrPathNotRelocatable, "path", file), "root", root)
	}

	n := len(segs)
	jarName := segs[n-1]
	version := segs[n-2]
	artifact := segs[n-3]
	group := strings.Join(segs[:n-3], ".")

	return Coordinate{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
		Version:  version,
	}, jarName, nil
}
