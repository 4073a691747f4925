// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete spindle CLI command tree. Kept
// separate from main so tests can construct and execute the tree
// without spawning the binary.
package commands

import (
	"fmt"

	"github.com/spindle-project/spindle/cmd/spindle/cli"
	repocmd "github.com/spindle-project/spindle/cmd/spindle/repo"
	setupcmd "github.com/spindle-project/spindle/cmd/spindle/setup"
	"github.com/spindle-project/spindle/lib/version"
)

// Root builds and returns the complete spindle CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "spindle",
		Description: `Spindle: package spec repository manager.

Maintain local mirrors of spec repositories under a single storage
root, with one canonical "master" mirror managed by setup.`,
		Subcommands: []*cli.Command{
			setupcmd.Command(),
			repocmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("spindle %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
