package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/cas"
	"go.trai.ch/pin/internal/core/ports"
)

func TestStore_PutFlushReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "hashes.json")
	entry := ports.HashEntry{SHA1: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", Size: 5, MTime: 1700000000000000000}

	store := cas.NewStore(path)
	require.NoError(t, store.Put("key1", entry))
	require.NoError(t, store.Flush())

	reloaded := cas.NewStore(path)
	got, ok := reloaded.Get("key1")
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestStore_GetMiss(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "hashes.json"))

	_, ok := store.Get("absent")
	assert.False(t, ok)
}

func TestStore_FlushWithoutChangesWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.json")

	store := cas.NewStore(path)
	require.NoError(t, store.Flush())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := cas.NewStore(path)
	_, ok := store.Get("anything")
	assert.False(t, ok)

	// The rebuilt cache must still be persistable.
	require.NoError(t, store.Put("key1", ports.HashEntry{SHA1: "da39a3ee5e6b4b0d3255bfef95601890afd80709"}))
	require.NoError(t, store.Flush())

	reloaded := cas.NewStore(path)
	_, ok = reloaded.Get("key1")
	assert.True(t, ok)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "hashes.json"))

	require.NoError(t, store.Put("key1", ports.HashEntry{SHA1: "old", Size: 1}))
	require.NoError(t, store.Put("key1", ports.HashEntry{SHA1: "new", Size: 2}))

	got, ok := store.Get("key1")
	require.True(t, ok)
	assert.Equal(t, "new", got.SHA1)
}
