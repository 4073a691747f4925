// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"github.com/spindle-project/spindle/cmd/spindle/cli"
	"github.com/spindle-project/spindle/lib/git"
	"github.com/spindle-project/spindle/lib/source"
)

func listCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "list",
		Summary: "List configured spec repositories",
		Usage:   "spindle repo list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Validation("list takes no arguments, got %d", len(args))
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("repo list: %w", err)
			}
			sources := source.NewManager(cfg.ReposDir())

			names, err := sources.All()
			if err != nil {
				return fmt.Errorf("repo list: %w", err)
			}
			if len(names) == 0 {
				fmt.Fprintln(os.Stderr, "No repos configured. Run 'spindle setup' to get started.")
				return &cli.ExitError{Code: 1}
			}

			// Listing goes to stdout so it can be piped; the URL column
			// is best-effort, a repo with no remote shows "-".
			ctx := context.Background()
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "NAME\tURL\n")
			for _, name := range names {
				url, err := git.NewRepository(sources.Path(name)).RemoteURL(ctx)
				if err != nil {
					url = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, url)
			}
			return tw.Flush()
		},
	}
}
