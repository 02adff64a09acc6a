package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/lockfile"
	"go.trai.ch/pin/internal/core/domain"
)

func testEntries() []domain.LockfileEntry {
	return []domain.LockfileEntry{
		{Group: "com.example", Artifact: "toolkit", Version: "1.2.0", JarName: "toolkit-1.2.0.jar", SHA1: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{Group: "junit", Artifact: "junit", Version: "4.13.2", JarName: "junit-4.13.2.jar", SHA1: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := lockfile.NewStore()
	path := filepath.Join(t.TempDir(), "dependencies.lock")

	require.NoError(t, store.Write(path, testEntries()))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, testEntries(), got)
}

func TestStore_Write_Golden(t *testing.T) {
	store := lockfile.NewStore()
	path := filepath.Join(t.TempDir(), "dependencies.lock")

	require.NoError(t, store.Write(path, testEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "dependencies", data)
}

func TestStore_Write_LeavesNoTemporaryFiles(t *testing.T) {
	store := lockfile.NewStore()
	dir := t.TempDir()
	path := filepath.Join(dir, "dependencies.lock")

	require.NoError(t, store.Write(path, testEntries()))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "dependencies.lock", names[0].Name())
}

func TestStore_Write_Overwrites(t *testing.T) {
	store := lockfile.NewStore()
	path := filepath.Join(t.TempDir(), "dependencies.lock")

	require.NoError(t, store.Write(path, testEntries()))
	require.NoError(t, store.Write(path, testEntries()[:1]))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, testEntries()[:1], got)
}

func TestStore_Read_Missing(t *testing.T) {
	store := lockfile.NewStore()

	_, err := store.Read(filepath.Join(t.TempDir(), "nope.lock"))
	assert.Error(t, err)
}

func TestStore_Read_MalformedLine(t *testing.T) {
	store := lockfile.NewStore()
	path := filepath.Join(t.TempDir(), "dependencies.lock")
	content := "junit\tjunit\t4.13.2\tjunit-4.13.2.jar\tda39a3ee5e6b4b0d3255bfef95601890afd80709\n" +
		"not a lockfile line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := store.Read(path)
	assert.ErrorIs(t, err, domain.ErrMalformedLockfile)
}

func TestEncode_RejectsFramingCharacters(t *testing.T) {
	_, err := lockfile.Encode(domain.LockfileEntry{Group: "bad\tgroup"})
	assert.ErrorIs(t, err, domain.ErrMalformedLockfile)
}

func TestDecode(t *testing.T) {
	entry, err := lockfile.Decode("junit\tjunit\t4.13.2\tjunit-4.13.2.jar\tda39a3ee5e6b4b0d3255bfef95601890afd80709")
	require.NoError(t, err)
	assert.Equal(t, domain.LockfileEntry{
		Group:    "junit",
		Artifact: "junit",
		Version:  "4.13.2",
		JarName:  "junit-4.13.2.jar",
		SHA1:     "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}, entry)
}
