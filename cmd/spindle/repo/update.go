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

func updateCommand() *cli.Command {
	var force bool
	var configPath string

	return &cli.Command{
		Name:    "update",
		Summary: "Update spec repositories from their remotes",
		Usage:   "spindle repo update [name] [flags]",
		Examples: []cli.Example{
			{
				Description: "Update every configured repo",
				Command:     "spindle repo update",
			},
			{
				Description: "Reset a diverged mirror to its upstream",
				Command:     "spindle repo update master --force",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("update", pflag.ContinueOnError)
			flagSet.BoolVar(&force, "force", false, "discard local changes and reset to upstream")
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("expected at most one repo name, got %d arguments", len(args))
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("repo update: %w", err)
			}
			sources := source.NewManager(cfg.ReposDir())

			var names []string
			if len(args) == 1 {
				names = args
			} else {
				names, err = sources.All()
				if err != nil {
					return fmt.Errorf("repo update: %w", err)
				}
				if len(names) == 0 {
					return cli.NotFound("no repos configured").
						WithHint("Run 'spindle setup' to create the master spec repo.")
				}
			}

			printer := ui.NewPrinter(os.Stderr)
			printer.Section("Updating repos")

			ctx := context.Background()
			for _, name := range names {
				printer.Detail("Updating %s", name)
				if err := sources.Update(ctx, name, force); err != nil {
					return fmt.Errorf("repo update %s: %w", name, err)
				}
			}

			printer.Done("Updated %d repo(s)", len(names))
			return nil
		},
	}
}
