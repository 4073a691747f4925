// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spindle-project/spindle/cmd/spindle/cli"
	"github.com/spindle-project/spindle/lib/config"
	"github.com/spindle-project/spindle/lib/ui"
)

// Command returns the "spindle setup" command.
func Command() *cli.Command {
	var requestPush bool
	var noShallow bool
	var configPath string

	return &cli.Command{
		Name:    "setup",
		Summary: "Set up the master spec repository",
		Description: "Set up the local mirror of the canonical spec repository.\n" +
			"Clones it if missing, updates it if present, and migrates\n" +
			"installations using the pre-repos directory layout. Safe to\n" +
			"run repeatedly.",
		Usage: "spindle setup [flags]",
		Examples: []cli.Example{
			{
				Description: "Bring the mirror up to date (read-only access)",
				Command:     "spindle setup",
			},
			{
				Description: "Switch the mirror to push access with full history",
				Command:     "spindle setup --push",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("setup", pflag.ContinueOnError)
			flagSet.BoolVar(&requestPush, "push", false,
				"use the push-capable endpoint (implies a full clone)")
			flagSet.BoolVar(&noShallow, "no-shallow", false,
				"clone the full history instead of a shallow clone")
			flagSet.StringVar(&configPath, "config", "",
				"config file path (default: $SPINDLE_CONFIG, then built-in defaults)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Validation("setup takes no arguments, got %d", len(args))
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("setup: %w", err)
			}

			printer := ui.NewPrinter(os.Stderr)
			printer.Section("Setting up spindle")

			run := &Setup{
				Config:      cfg,
				RequestPush: requestPush,
				NoShallow:   noShallow,
				Logger:      cli.NewCommandLogger().With("command", "setup"),
				Output:      printer,
			}
			outcome, err := run.Run(context.Background())
			if err != nil {
				return fmt.Errorf("setup: %w", err)
			}

			printer.Done("Setup completed (%s access)", outcome.Mode)
			return nil
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
