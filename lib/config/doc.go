// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the spindle
// CLI and owns the on-disk layout constants.
//
// Configuration is optional. Without a config file, [Default] derives
// the storage root from SPINDLE_HOME or falls back to ~/.spindle. A
// file can be named explicitly via the SPINDLE_CONFIG environment
// variable (through [Load]) or a --config flag (through [LoadFile]);
// there is no ~/.config discovery or search path, so where settings
// come from is always auditable.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// The spec repositories live under Home/repos. [MasterName] is the
// fixed name of the canonical spec repo mirror inside that directory.
//
// This package depends on no other spindle packages.
package config
