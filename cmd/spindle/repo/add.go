// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spindle-project/spindle/cmd/spindle/cli"
	"github.com/spindle-project/spindle/lib/source"
	"github.com/spindle-project/spindle/lib/ui"
)

func addCommand() *cli.Command {
	var shallow bool
	var configPath string

	return &cli.Command{
		Name:    "add",
		Summary: "Clone a spec repository",
		Usage:   "spindle repo add <name> <url> [branch] [flags]",
		Examples: []cli.Example{
			{
				Description: "Add a private spec repo tracking its default branch",
				Command:     "spindle repo add internal git@example.com:team/specs.git",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("add", pflag.ContinueOnError)
			flagSet.BoolVar(&shallow, "shallow", false, "clone without history")
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return cli.Validation("expected <name> <url> [branch], got %d arguments", len(args))
			}
			name, url := args[0], args[1]
			branch := ""
			if len(args) == 3 {
				branch = args[2]
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("repo add: %w", err)
			}
			if err := cfg.EnsureReposDir(); err != nil {
				return fmt.Errorf("repo add: %w", err)
			}

			printer := ui.NewPrinter(os.Stderr)
			printer.Section("Adding repo " + name)

			sources := source.NewManager(cfg.ReposDir())
			if err := sources.Add(context.Background(), name, url, branch, shallow); err != nil {
				return fmt.Errorf("repo add: %w", err)
			}

			printer.Done("Added %s from %s", name, url)
			return nil
		},
	}
}
