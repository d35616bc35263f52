// Package core wires together the classifier registry, the artifact
// accountant, and the parallel walker behind a project-wide configuration
// file, and hosts the handful of small standalone helpers (ignore patterns,
// age filtering) that the CLI front end needs but that don't belong in any
// single core subpackage.
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WalkerSettings mirrors core/fswalk.Options as optional overrides: a nil
// pointer means "use the default", letting .kondo.yaml override only the
// fields it mentions.
type WalkerSettings struct {
	FollowSymlinks *bool `yaml:"follow_symlinks"`
	SameFileSystem *bool `yaml:"same_file_system"`
	SkipHidden     *bool `yaml:"skip_hidden"`
}

// Config holds project-level configuration loaded from .kondo.yaml.
type Config struct {
	// Roots are additional discovery roots to scan, beyond whatever the CLI
	// invocation passes on the command line.
	Roots []string `yaml:"roots"`
	// Kinds restricts discovery to the named kinds (classify.Kind strings).
	// Empty means "every known kind".
	Kinds []string `yaml:"kinds"`
	// Exclude holds .kondoignore-style patterns applied on top of any
	// .kondoignore file found at a discovery root.
	Exclude []string `yaml:"exclude"`
	// Walker overrides the default WalkerOptions.
	Walker WalkerSettings `yaml:"walker"`
}

// LoadConfig reads .kondo.yaml from root and returns the parsed config. If
// the file does not exist, a zero-value Config is returned with no error —
// absence of a config file is not a failure, it means "use every default".
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ".kondo.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}
