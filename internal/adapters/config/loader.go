// Package config provides the configuration loader for pin.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional configuration file name.
const DefaultFilename = "pin.yaml"

// DefaultLockfile is the conventional lockfile name.
const DefaultLockfile = "dependencies.lock"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file. A missing file is
// not an error; every setting has a default.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the conventional file name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// SetFilename overrides the configuration file path, as selected by the
// --config flag.
func (l *Loader) SetFilename(name string) {
	if name != "" {
		l.Filename = name
	}
}

// Load reads the configuration from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return Load(path)
}

// Load reads a configuration file from the given path and returns the pass
// configuration with defaults applied.
func Load(path string) (*domain.Config, error) {
	var pinfile Pinfile

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &pinfile); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	cfg := &domain.Config{
		LockfilePath:   DefaultLockfile,
		RepositoryRoot: defaultRepositoryRoot(),
		Profile:        domain.ProfileAll,
		Maven: domain.MavenConfig{
			Command:      []string{"mvn", "--batch-mode"},
			PackageGoals: []string{"package"},
		},
	}

	if pinfile.Lockfile != "" {
		cfg.LockfilePath = pinfile.Lockfile
	}
	if pinfile.Repository != "" {
		cfg.RepositoryRoot = pinfile.Repository
	}
	if pinfile.Profile != "" {
		profile, err := domain.ParseProfile(pinfile.Profile)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.Profile = profile
	}
	if len(pinfile.Maven.Command) > 0 {
		cfg.Maven.Command = pinfile.Maven.Command
	}
	if len(pinfile.Maven.PackageGoals) > 0 {
		cfg.Maven.PackageGoals = pinfile.Maven.PackageGoals
	}

	return cfg, nil
}

func defaultRepositoryRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}
