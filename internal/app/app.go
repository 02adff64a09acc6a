// Package app implements the application layer for pin.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/reconcile"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.DependencyResolver
	identifier   ports.ArtifactIdentifier
	lockfiles    ports.LockfileStore
	executor     ports.Executor
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.DependencyResolver,
	identifier ports.ArtifactIdentifier,
	lockfiles ports.LockfileStore,
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		identifier:   identifier,
		lockfiles:    lockfiles,
		executor:     executor,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Verify recomputes the canonical entries and compares them against the
// persisted lockfile. A divergence returns domain.ErrLockfileMismatch with
// the first differing line attached as metadata.
func (a *App) Verify(ctx context.Context) error {
	cfg, computed, err := a.computeEntries(ctx)
	if err != nil {
		return err
	}

	persisted, err := a.lockfiles.Read(cfg.LockfilePath)
	if err != nil {
		return zerr.Wrap(err, "failed to read lockfile")
	}

	mismatch := domain.Diff(computed, persisted)
	if mismatch == nil {
		a.logger.Info(fmt.Sprintf("lockfile %s is up to date (%d entries)", cfg.LockfilePath, len(computed)))
		return nil
	}

	err = zerr.Wrap(domain.ErrLockfileMismatch, "lockfile is out of date")
	err = zerr.With(err, "path", cfg.LockfilePath)
	err = zerr.With(err, "line", mismatch.Line)
	err = zerr.With(err, "computed", renderEntry(mismatch.Computed))
	return zerr.With(err, "persisted", renderEntry(mismatch.Persisted))
}

// Freshen recomputes the canonical entries and rewrites the lockfile.
func (a *App) Freshen(ctx context.Context) error {
	cfg, computed, err := a.computeEntries(ctx)
	if err != nil {
		return err
	}

	if err := a.lockfiles.Write(cfg.LockfilePath, computed); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}

	a.logger.Info(fmt.Sprintf("wrote %d entries to %s", len(computed), cfg.LockfilePath))
	return nil
}

// Echo recomputes the canonical entries and writes them to w without touching
// the lockfile on disk.
func (a *App) Echo(ctx context.Context, w io.Writer) error {
	_, computed, err := a.computeEntries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range computed {
		if _, err := fmt.Fprintln(w, entry.String()); err != nil {
			return zerr.Wrap(err, "failed to write entry")
		}
	}
	return nil
}

// Package verifies the lockfile and, only when it is up to date, hands off to
// the configured package goals. A stale lockfile aborts before any build runs.
func (a *App) Package(ctx context.Context) error {
	if err := a.Verify(ctx); err != nil {
		return err
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	argv := append(append([]string{}, cfg.Maven.Command...), cfg.Maven.PackageGoals...)
	if err := a.executor.Run(ctx, ".", argv); err != nil {
		return zerr.Wrap(err, "package goals failed")
	}
	return nil
}

// computeEntries runs the full pipeline: resolve both resolver views, derive
// and fingerprint the artifacts, join the views, and canonicalize.
func (a *App) computeEntries(ctx context.Context) (*domain.Config, []domain.LockfileEntry, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	paths, forest, err := a.resolve(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := a.identify(ctx, paths, cfg.RepositoryRoot)
	if err != nil {
		return nil, nil, err
	}

	entries, err := a.reconcile(ctx, resolved, domain.FlattenAll(forest))
	if err != nil {
		return nil, nil, err
	}
	return cfg, entries, nil
}

// resolve invokes the two resolver views concurrently. The views come from
// independent resolver runs, so the join in the reconciler is what catches any
// disagreement between them.
func (a *App) resolve(ctx context.Context, cfg *domain.Config) ([]string, []*domain.Node, error) {
	ctx, vertex := a.telemetry.Record(ctx, "resolve dependencies")

	var (
		paths  []string
		forest []*domain.Node
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		paths, err = a.resolver.ResolveArtifacts(groupCtx, cfg.Maven, cfg.Profile)
		return err
	})
	group.Go(func() error {
		var err error
		forest, err = a.resolver.DependencyHierarchy(groupCtx, cfg.Maven, cfg.Profile)
		return err
	})

	err := group.Wait()
	vertex.Complete(err)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to resolve dependencies")
	}
	vertex.Log(fmt.Sprintf("%d artifacts", len(paths)))
	return paths, forest, nil
}

func (a *App) identify(ctx context.Context, paths []string, root string) ([]domain.ResolvedArtifact, error) {
	ctx, vertex := a.telemetry.Record(ctx, "fingerprint artifacts")

	resolved, err := a.identifier.Identify(ctx, paths, root)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to identify artifacts")
	}
	return resolved, nil
}

func (a *App) reconcile(
	ctx context.Context,
	resolved []domain.ResolvedArtifact,
	hierarchy []domain.HierarchyEntry,
) ([]domain.LockfileEntry, error) {
	_, vertex := a.telemetry.Record(ctx, "reconcile views")

	records, err := reconcile.Reconcile(resolved, hierarchy)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to reconcile dependency views")
	}
	return reconcile.Canonicalize(records), nil
}

func renderEntry(entry *domain.LockfileEntry) string {
	if entry == nil {
		return "<missing>"
	}
	return entry.String()
}
