package domain

import "go.trai.ch/zerr"

// Profile selects which dependency subset feeds both resolver queries.
type Profile string

const (
	// ProfileAll covers the full graph including test-scoped dependencies.
	ProfileAll Profile = "all"

	// ProfilePackaged covers only dependencies that end up in the packaged
	// artifact.
	ProfilePackaged Profile = "packaged"
)

// ParseProfile validates a profile name from configuration.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileAll, ProfilePackaged:
		return Profile(s), nil
	}
	return "", zerr.With(ErrUnknownProfile, "profile", s)
}

// MavenConfig describes how to invoke the external resolver.
type MavenConfig struct {
	// Command is the resolver executable and its leading arguments.
	Command []string

	// PackageGoals are the goals `pin package` runs after a clean verify.
	PackageGoals []string
}

// Config is the reconciliation pass configuration as consumed by the core.
type Config struct {
	// LockfilePath is where the canonical entries are persisted.
	LockfilePath string

	// RepositoryRoot is the local repository directory every resolved
	// artifact is expected to live under.
	RepositoryRoot string

	// Profile selects the dependency subset for both resolver queries.
	Profile Profile

	Maven MavenConfig
}
