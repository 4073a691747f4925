// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// MasterName is the fixed name of the canonical spec repo mirror under
// the repos directory. The setup command clones, migrates, and updates
// exactly this entry; user-added repos live alongside it under any
// other name.
const MasterName = "master"

// Config holds the spindle directory layout.
type Config struct {
	// Home is the storage root for all spindle state. Everything the
	// tool touches on disk lives underneath it.
	Home string `yaml:"home"`
}

// Default returns the configuration used when no config file is given:
// SPINDLE_HOME if set, otherwise ~/.spindle.
func Default() *Config {
	home := os.Getenv("SPINDLE_HOME")
	if home == "" {
		userHome, _ := os.UserHomeDir()
		home = filepath.Join(userHome, ".spindle")
	}
	return &Config{Home: home}
}

// Load loads configuration from the file named by SPINDLE_CONFIG, or
// returns [Default] when the variable is unset. Unlike the defaults,
// a file that is named but unreadable is an error — a misspelled path
// must not silently fall back.
func Load() (*Config, error) {
	path := os.Getenv("SPINDLE_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, layered over
// the defaults. The config file is the single source of truth for the
// values it sets; environment variables do not override it. The only
// expansion performed is ${VAR} / ${VAR:-default} in path fields, for
// portability of shared config files.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home is required")
	}
	return nil
}

// ReposDir returns the directory holding the local spec repositories,
// the mirror of the canonical spec repo included.
func (c *Config) ReposDir() string {
	return filepath.Join(c.Home, "repos")
}

// MasterRepoDir returns the current (canonical-layout) location of the
// spec repo mirror.
func (c *Config) MasterRepoDir() string {
	return filepath.Join(c.ReposDir(), MasterName)
}

// LegacyMasterRepoDir returns where the mirror lived before the repos
// directory existed: directly under the storage root. Kept so setup can
// recognize and migrate pre-repos-layout installations.
func (c *Config) LegacyMasterRepoDir() string {
	return filepath.Join(c.Home, MasterName)
}

// EnsureReposDir creates the repos directory (and the storage root
// above it) if missing.
func (c *Config) EnsureReposDir() error {
	if err := os.MkdirAll(c.ReposDir(), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.ReposDir(), err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Home = expandVars(c.Home)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
