package domain

import "go.trai.ch/zerr"

var (
	// ErrPathNotRelocatable is returned when a resolved artifact's path does
	// not lie under the configured local repository root. The coordinate
	// derived from such a path cannot be trusted.
	ErrPathNotRelocatable = zerr.New("artifact path not under repository root")

	// ErrUnjoinableDependency is returned when a dependency appears in one
	// resolver view but has no counterpart in the other.
	ErrUnjoinableDependency = zerr.New("dependency missing from one resolver view")

	// ErrVersionConflict is returned when the two resolver views report
	// genuinely different versions for the same (group, artifact). This is a
	// configuration ambiguity the operator must resolve; it is never picked
	// silently.
	ErrVersionConflict = zerr.New("conflicting versions for dependency")

	// ErrLockfileMismatch is returned when verify finds a computed entry that
	// disagrees with, or is missing or extra relative to, the persisted
	// lockfile.
	ErrLockfileMismatch = zerr.New("lockfile does not match resolved dependencies")

	// ErrMalformedLockfile is returned when a persisted lockfile line does not
	// parse as a serialized entry.
	ErrMalformedLockfile = zerr.New("malformed lockfile line")

	// ErrUnknownProfile is returned when the configuration names a dependency
	// profile that is neither "all" nor "packaged".
	ErrUnknownProfile = zerr.New("unknown dependency profile")
)
