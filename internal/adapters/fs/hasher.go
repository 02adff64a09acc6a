// Package fs provides filesystem-backed artifact identification: coordinate
// derivation from repository paths and content fingerprinting.
package fs

import (
	"crypto/sha1" //nolint:gosec // integrity fingerprint, not a security boundary
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactHasher = (*Hasher)(nil)

// Hasher computes SHA-1 fingerprints by streaming file content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// SHA1 streams the file at path through a SHA-1 digest and returns the
// lowercase hex form, 40 characters.
func (h *Hasher) SHA1(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the resolver
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha1.New() //nolint:gosec // See package note: compact fingerprint with universal tooling support
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash artifact content"), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
