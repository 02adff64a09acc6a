package reconcile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

func zerrMetadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	return zErr.Metadata()
}

func resolved(desc, version, jar, sha string) domain.ResolvedArtifact {
	group, artifact := domain.ParseDescriptor(desc)
	return domain.ResolvedArtifact{
		Coordinate: domain.Coordinate{Group: group, Artifact: artifact, Version: version},
		JarName:    jar,
		SHA1:       sha,
	}
}

func hierarchy(desc, version, scope string) domain.HierarchyEntry {
	return domain.ParseRawEntry(domain.RawEntry{Descriptor: desc, Version: version, Scope: scope})
}

func TestReconcile_JoinTotality(t *testing.T) {
	artifacts := []domain.ResolvedArtifact{
		resolved("org.clojure/clojure", "1.11.1", "clojure-1.11.1.jar", "aaaa"),
		resolved("junit/junit", "4.13.2", "junit-4.13.2.jar", "bbbb"),
		resolved("org.clojure/spec.alpha", "0.3.218", "spec.alpha-0.3.218.jar", "cccc"),
	}
	entries := []domain.HierarchyEntry{
		hierarchy("junit/junit", "4.13.2", "test"),
		hierarchy("org.clojure/clojure", "1.11.1", ""),
		hierarchy("org.clojure/spec.alpha", "0.3.218", ""),
	}

	records, err := reconcile.Reconcile(artifacts, entries)
	require.NoError(t, err)
	require.Len(t, records, len(artifacts))

	// jarName/sha1 come from the resolved side, scope from the hierarchy side.
	assert.Equal(t, "clojure-1.11.1.jar", records[0].JarName)
	assert.Equal(t, "aaaa", records[0].SHA1)
	assert.Equal(t, "", records[0].Scope)
	assert.Equal(t, "test", records[1].Scope)
}

func TestReconcile_SnapshotPrecision(t *testing.T) {
	artifacts := []domain.ResolvedArtifact{
		resolved("com.example/widget", "1.2.0-20230101.120000-3", "widget-1.2.0-20230101.120000-3.jar", "dddd"),
	}
	entries := []domain.HierarchyEntry{
		hierarchy("com.example/widget", "1.2.0-SNAPSHOT", ""),
	}

	records, err := reconcile.Reconcile(artifacts, entries)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1.2.0-20230101.120000-3", records[0].Coordinate.Version)
}

func TestReconcile_VersionConflict(t *testing.T) {
	artifacts := []domain.ResolvedArtifact{
		resolved("com.example/widget", "2.0.0", "widget-2.0.0.jar", "dddd"),
	}
	entries := []domain.HierarchyEntry{
		hierarchy("com.example/widget", "3.0.0", ""),
	}

	_, err := reconcile.Reconcile(artifacts, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Contains(t, err.Error(), "conflicting versions")
}

func TestReconcile_OrphanArtifact(t *testing.T) {
	artifacts := []domain.ResolvedArtifact{
		resolved("com.example/orphan", "1.0.0", "orphan-1.0.0.jar", "eeee"),
	}

	_, err := reconcile.Reconcile(artifacts, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnjoinableDependency)
	assert.Contains(t, zerrMetadata(t, err)["coordinate"], "com.example/orphan")
}

func TestReconcile_OrphanHierarchyEntry(t *testing.T) {
	entries := []domain.HierarchyEntry{
		hierarchy("com.example/ghost", "1.0.0", "provided"),
	}

	_, err := reconcile.Reconcile(nil, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnjoinableDependency)
	assert.Contains(t, zerrMetadata(t, err)["coordinate"], "com.example/ghost")
}

func TestReconcile_DuplicateHierarchyOccurrences(t *testing.T) {
	// The same coordinate reached through two branches joins once; the first
	// (shallowest) occurrence provides the annotations.
	artifacts := []domain.ResolvedArtifact{
		resolved("org.example/shared", "1.0.0", "shared-1.0.0.jar", "ffff"),
	}
	entries := []domain.HierarchyEntry{
		hierarchy("org.example/shared", "1.0.0", ""),
		hierarchy("org.example/shared", "1.0.0", "test"),
	}

	records, err := reconcile.Reconcile(artifacts, entries)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Scope)
}

func TestCanonicalize(t *testing.T) {
	records := []domain.ReconciledDependency{
		{
			Coordinate: domain.Coordinate{
				Group:    domain.NewInternedString("org.clojure"),
				Artifact: domain.NewInternedString("clojure"),
				Version:  "1.11.1",
			},
			JarName: "clojure-1.11.1.jar",
			SHA1:    "aaaa",
			Scope:   "test",
			Exclusions: []domain.Exclusion{
				{Group: domain.NewInternedString("x"), Artifact: domain.NewInternedString("x")},
			},
		},
		{
			Coordinate: domain.Coordinate{
				Group:    domain.NewInternedString("junit"),
				Artifact: domain.NewInternedString("junit"),
				Version:  "4.13.2",
			},
			JarName: "junit-4.13.2.jar",
			SHA1:    "bbbb",
		},
	}

	entries := reconcile.Canonicalize(records)
	require.Len(t, entries, 2)

	// Sorted by group first; scope and exclusions are gone from the projection.
	assert.Equal(t, "junit", entries[0].Group)
	assert.Equal(t, "org.clojure", entries[1].Group)
	assert.Equal(t, [5]string{"org.clojure", "clojure", "1.11.1", "clojure-1.11.1.jar", "aaaa"}, entries[1].Fields())
}
