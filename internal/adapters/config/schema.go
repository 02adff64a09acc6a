package config

// Pinfile represents the structure of the pin.yaml configuration file.
// Every field is optional; defaults cover a conventional Maven project.
type Pinfile struct {
	Version    string   `yaml:"version"`
	Lockfile   string   `yaml:"lockfile"`
	Repository string   `yaml:"repository"`
	Profile    string   `yaml:"profile"`
	Maven      MavenDTO `yaml:"maven"`
}

// MavenDTO describes how to invoke the external resolver.
type MavenDTO struct {
	Command      []string `yaml:"command"`
	PackageGoals []string `yaml:"packageGoals"`
}
