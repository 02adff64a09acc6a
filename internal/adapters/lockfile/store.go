// Package lockfile persists canonical dependency entries as a line-oriented
// UTF-8 text file, one tab-separated 5-tuple per line, in canonical sort
// order. The encoding round-trips byte-identically between Write and Read.
package lockfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileStore = (*Store)(nil)

const fieldCount = 5

// Store implements ports.LockfileStore.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the persisted entries in the file's physical order. The
// on-disk order is trusted to match the canonical sort, since the file was
// written by the same serializer; it is not re-sorted here.
func (s *Store) Read(path string) ([]domain.LockfileEntry, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open lockfile"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var entries []domain.LockfileEntry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		entry, err := Decode(scanner.Text())
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", line)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	return entries, nil
}

// Write overwrites the lockfile with the given entries, one per line, each
// followed by a newline. The write goes to a temporary file in the same
// directory which is renamed into place, so a failing pass never leaves a
// half-written lockfile behind.
func (s *Store) Write(path string, entries []domain.LockfileEntry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pin-lock-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary lockfile"), "dir", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // No-op after a successful rename

	w := bufio.NewWriter(tmp)
	for _, entry := range entries {
		text, err := Encode(entry)
		if err != nil {
			tmp.Close() //nolint:errcheck,gosec // Already failing
			return err
		}
		if _, err := w.WriteString(text + "\n"); err != nil {
			tmp.Close() //nolint:errcheck,gosec // Already failing
			return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close() //nolint:errcheck,gosec // Already failing
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temporary lockfile"), "path", tmpPath)
	}

	// The lockfile is meant to be committed; make it world-readable despite
	// CreateTemp's restrictive default.
	if err := os.Chmod(tmpPath, 0o644); err != nil { //nolint:gosec // Committed text file
		return zerr.With(zerr.Wrap(err, "failed to chmod lockfile"), "path", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace lockfile"), "path", path)
	}
	return nil
}

// Encode renders an entry as its tab-separated line form, rejecting field
// values that would corrupt the framing.
func Encode(entry domain.LockfileEntry) (string, error) {
	fields := entry.Fields()
	for _, f := range fields {
		if strings.ContainsAny(f, "\t\n") {
			return "", zerr.With(domain.ErrMalformedLockfile, "field", f)
		}
	}
	return entry.String(), nil
}

// Decode parses one tab-separated line back into an entry.
func Decode(line string) (domain.LockfileEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount {
		return domain.LockfileEntry{}, zerr.With(domain.ErrMalformedLockfile, "content", line)
	}
	return domain.LockfileEntry{
		Group:    fields[0],
		Artifact: fields[1],
		Version:  fields[2],
		JarName:  fields[3],
		SHA1:     fields[4],
	}, nil
}
