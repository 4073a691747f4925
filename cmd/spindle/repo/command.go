// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"github.com/spindle-project/spindle/cmd/spindle/cli"
	"github.com/spindle-project/spindle/lib/config"
)

// Command returns the "spindle repo" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "repo",
		Summary: "Manage spec repositories",
		Description: "Manage the local spec repositories under the spindle storage\n" +
			"root. Repositories are plain git clones; the master mirror set\n" +
			"up by 'spindle setup' appears here under the name \"master\".",
		Subcommands: []*cli.Command{
			addCommand(),
			updateCommand(),
			listCommand(),
			removeCommand(),
		},
	}
}

// loadConfig resolves configuration for one command invocation: an
// explicit --config wins over the SPINDLE_CONFIG environment variable.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
