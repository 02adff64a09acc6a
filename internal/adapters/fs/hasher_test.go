package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/fs"
)

func TestHasher_SHA1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.jar")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	got, err := fs.NewHasher().SHA1(path)
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", got)
}

func TestHasher_SHA1_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jar")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := fs.NewHasher().SHA1(path)
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", got)
}

func TestHasher_SHA1_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().SHA1(filepath.Join(t.TempDir(), "nope.jar"))
	assert.ErrorContains(t, err, "failed to open artifact")
}
