package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockConfigLoader
	resolver   *mocks.MockDependencyResolver
	identifier *mocks.MockArtifactIdentifier
	lockfiles  *mocks.MockLockfileStore
	executor   *mocks.MockExecutor
	logger     *mocks.MockLogger
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		resolver:   mocks.NewMockDependencyResolver(ctrl),
		identifier: mocks.NewMockArtifactIdentifier(ctrl),
		lockfiles:  mocks.NewMockLockfileStore(ctrl),
		executor:   mocks.NewMockExecutor(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.resolver, f.identifier, f.lockfiles, f.executor, f.logger, telemetry.NewNoop())
	return f
}

func testConfig() *domain.Config {
	return &domain.Config{
		LockfilePath:   "dependencies.lock",
		RepositoryRoot: "/repo",
		Profile:        domain.ProfileAll,
		Maven: domain.MavenConfig{
			Command:      []string{"mvn", "--batch-mode"},
			PackageGoals: []string{"package"},
		},
	}
}

func coordinate(group, artifact, version string) domain.Coordinate {
	return domain.Coordinate{
		Group:    domain.NewInternedString(group),
		Artifact: domain.NewInternedString(artifact),
		Version:  version,
	}
}

// expectPipeline arranges a successful resolve/identify run producing two
// dependencies, deliberately returned out of canonical order.
func (f *fixture) expectPipeline(cfg *domain.Config) []domain.LockfileEntry {
	paths := []string{
		"/repo/junit/junit/4.13.2/junit-4.13.2.jar",
		"/repo/com/example/toolkit/1.2.0/toolkit-1.2.0.jar",
	}
	forest := []*domain.Node{
		{Entry: domain.HierarchyEntry{Coordinate: coordinate("junit", "junit", "4.13.2"), Scope: "test"}},
		{Entry: domain.HierarchyEntry{Coordinate: coordinate("com.example", "toolkit", "1.2.0"), Scope: "compile"}},
	}
	resolved := []domain.ResolvedArtifact{
		{Coordinate: coordinate("junit", "junit", "4.13.2"), JarName: "junit-4.13.2.jar", SHA1: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{Coordinate: coordinate("com.example", "toolkit", "1.2.0"), JarName: "toolkit-1.2.0.jar", SHA1: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
	}

	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.resolver.EXPECT().ResolveArtifacts(gomock.Any(), cfg.Maven, cfg.Profile).Return(paths, nil)
	f.resolver.EXPECT().DependencyHierarchy(gomock.Any(), cfg.Maven, cfg.Profile).Return(forest, nil)
	f.identifier.EXPECT().Identify(gomock.Any(), paths, "/repo").Return(resolved, nil)

	return []domain.LockfileEntry{
		{Group: "com.example", Artifact: "toolkit", Version: "1.2.0", JarName: "toolkit-1.2.0.jar", SHA1: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{Group: "junit", Artifact: "junit", Version: "4.13.2", JarName: "junit-4.13.2.jar", SHA1: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}
}

func TestVerify_UpToDate(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	f.lockfiles.EXPECT().Read("dependencies.lock").Return(computed, nil)
	f.logger.EXPECT().Info(gomock.Any())

	assert.NoError(t, f.app.Verify(context.Background()))
}

func TestVerify_Mismatch(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	persisted := append([]domain.LockfileEntry{}, computed...)
	persisted[1].SHA1 = "0000000000000000000000000000000000000000"
	f.lockfiles.EXPECT().Read("dependencies.lock").Return(persisted, nil)

	err := f.app.Verify(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockfileMismatch)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 2, zErr.Metadata()["line"])
}

func TestVerify_MissingTrailingEntry(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	f.lockfiles.EXPECT().Read("dependencies.lock").Return(computed[:1], nil)

	err := f.app.Verify(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockfileMismatch)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "<missing>", zErr.Metadata()["persisted"])
}

func TestVerify_ReadFailure(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectPipeline(cfg)

	f.lockfiles.EXPECT().Read("dependencies.lock").Return(nil, zerr.New("no such file"))

	err := f.app.Verify(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLockfileMismatch)
}

func TestFreshen(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	f.lockfiles.EXPECT().Write("dependencies.lock", computed).Return(nil)
	f.logger.EXPECT().Info(gomock.Any())

	assert.NoError(t, f.app.Freshen(context.Background()))
}

func TestEcho(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	f.expectPipeline(cfg)

	var buf bytes.Buffer
	require.NoError(t, f.app.Echo(context.Background(), &buf))

	want := "com.example\ttoolkit\t1.2.0\ttoolkit-1.2.0.jar\taaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d\n" +
		"junit\tjunit\t4.13.2\tjunit-4.13.2.jar\tda39a3ee5e6b4b0d3255bfef95601890afd80709\n"
	assert.Equal(t, want, buf.String())
}

func TestPackage_RunsGoalsAfterCleanVerify(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	f.lockfiles.EXPECT().Read("dependencies.lock").Return(computed, nil)
	f.logger.EXPECT().Info(gomock.Any())
	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.executor.EXPECT().Run(gomock.Any(), ".", []string{"mvn", "--batch-mode", "package"}).Return(nil)

	assert.NoError(t, f.app.Package(context.Background()))
}

func TestPackage_StaleLockfileAborts(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	computed := f.expectPipeline(cfg)

	persisted := append([]domain.LockfileEntry{}, computed...)
	persisted[0].Version = "1.1.0"
	f.lockfiles.EXPECT().Read("dependencies.lock").Return(persisted, nil)

	err := f.app.Package(context.Background())
	assert.ErrorIs(t, err, domain.ErrLockfileMismatch)
}

func TestVerify_ResolverFailure(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()

	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.resolver.EXPECT().ResolveArtifacts(gomock.Any(), cfg.Maven, cfg.Profile).
		Return(nil, zerr.New("resolver exited with status 1"))
	f.resolver.EXPECT().DependencyHierarchy(gomock.Any(), cfg.Maven, cfg.Profile).
		Return(nil, nil).MaxTimes(1)

	err := f.app.Verify(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to resolve dependencies")
}
