// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spindle-project/spindle/cmd/spindle/cli"
	"github.com/spindle-project/spindle/lib/source"
	"github.com/spindle-project/spindle/lib/ui"
)

func removeCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "remove",
		Summary: "Delete a local spec repository",
		Usage:   "spindle repo remove <name> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one repo name, got %d arguments", len(args))
			}
			name := args[0]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("repo remove: %w", err)
			}

			sources := source.NewManager(cfg.ReposDir())
			if err := sources.Remove(name); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return cli.NotFound("repo %q not found", name).
						WithHint("Run 'spindle repo list' to see configured repositories.")
				}
				return fmt.Errorf("repo remove: %w", err)
			}

			ui.NewPrinter(os.Stderr).Done("Removed %s", name)
			return nil
		},
	}
}
