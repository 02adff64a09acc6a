package maven

import (
	"path/filepath"
	"strings"
)

// ParseList extracts artifact file paths from dependency:list output run with
// -DoutputAbsoluteArtifactFilename=true. Dependency lines look like
//
//	[INFO]    org.clojure:clojure:jar:1.11.1:compile:/home/me/.m2/repository/org/clojure/clojure/1.11.1/clojure-1.11.1.jar
//
// possibly followed by a " -- module ..." annotation on newer Maven versions.
// Anything that does not end in an absolute path is log noise and skipped.
func ParseList(output string) []string {
	var paths []string
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(stripLogPrefix(line))
		if i := strings.Index(line, " -- "); i >= 0 {
			line = line[:i]
		}

		fields := strings.Split(line, ":")
		if len(fields) < 6 {
			continue
		}

		path := fields[len(fields)-1]
		if filepath.IsAbs(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

// stripLogPrefix removes Maven's "[INFO] " style log level prefix.
func stripLogPrefix(line string) string {
	line = strings.TrimSuffix(line, "\n")
	if strings.HasPrefix(line, "[") {
		if i := strings.Index(line, "] "); i >= 0 {
			return line[i+2:]
		}
	}
	return line
}
