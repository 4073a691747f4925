// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spindle-project/spindle/lib/config"
	"github.com/spindle-project/spindle/lib/git"
	"github.com/spindle-project/spindle/lib/source"
	"github.com/spindle-project/spindle/lib/ui"
)

// Canonical endpoints of the spec repository. Both address the same
// logical remote; the mode decides which one the mirror's origin
// points at.
const (
	DefaultReadOnlyURL = "https://github.com/spindle-project/specs.git"
	DefaultPushURL     = "git@github.com:spindle-project/specs.git"
)

// Action records which dispatch branch a setup run executed.
type Action string

const (
	// ActionRefresh updated an existing mirror in place.
	ActionRefresh Action = "refresh"

	// ActionAdopt cloned the mirror fresh.
	ActionAdopt Action = "adopt"
)

// Outcome is the terminal result of a setup run, consumed by the CLI
// layer to produce the user-facing confirmation.
type Outcome struct {
	// Mode is the access mode the run converged on.
	Mode AccessMode

	// Action is the dispatch branch that executed.
	Action Action

	// Migrated reports whether the legacy layout was moved under the
	// repos directory during this run.
	Migrated bool
}

// Setup is one configured setup run. Populate the fields and call
// [Setup.Run]; zero-value URL and branch fields get the canonical
// defaults.
type Setup struct {
	// Config provides the storage root and directory layout.
	Config *config.Config

	// ReadOnlyURL and PushURL are the two endpoints of the canonical
	// spec repository. Overridden in tests to point at local fixtures.
	ReadOnlyURL string
	PushURL     string

	// Branch is the primary branch the mirror tracks.
	Branch string

	// RequestPush is the explicit user request for push mode.
	RequestPush bool

	// NoShallow disables the shallow clone on a fresh adopt.
	NoShallow bool

	// Logger receives structured progress events. Optional.
	Logger *slog.Logger

	// Output receives user-facing progress lines. Optional.
	Output *ui.Printer
}

// Run executes the setup decision logic: resolve the access mode,
// classify the on-disk layout, and dispatch exactly one of refresh,
// migrate-then-adopt, or adopt. The first failing step aborts the run;
// there is no partial-success outcome.
func (s *Setup) Run(ctx context.Context) (*Outcome, error) {
	if s.ReadOnlyURL == "" {
		s.ReadOnlyURL = DefaultReadOnlyURL
	}
	if s.PushURL == "" {
		s.PushURL = DefaultPushURL
	}
	if s.Branch == "" {
		s.Branch = config.MasterName
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.Output == nil {
		s.Output = ui.NewPrinter(io.Discard)
	}

	mirror := s.Config.MasterRepoDir()

	// Mode is resolved once, before anything mutates, and stays fixed
	// for the rest of the run.
	mode := resolveMode(ctx, s.RequestPush, mirror, s.PushURL)
	layout := classify(mirror, s.Config.LegacyMasterRepoDir())
	s.Logger.Info("setup starting", "mode", mode, "layout", layout.String())

	outcome := &Outcome{Mode: mode}

	switch layout {
	case stateCurrent:
		if err := s.refresh(ctx, mode); err != nil {
			return nil, err
		}
		outcome.Action = ActionRefresh

	case stateLegacy:
		s.Output.Detail("Migrating repos from %s to %s", s.Config.Home, s.Config.ReposDir())
		if err := migrate(s.Config.Home, s.Config.ReposDir()); err != nil {
			return nil, fmt.Errorf("migrating legacy layout: %w", err)
		}
		outcome.Migrated = true
		s.Logger.Info("legacy layout migrated", "repos", s.Config.ReposDir())

		// The migrated entry named like the mirror may be a valid
		// repository (refresh it), a raw directory from a broken
		// install (replace it), or missing entirely (adopt).
		switch {
		case git.IsRepository(mirror):
			if err := s.refresh(ctx, mode); err != nil {
				return nil, err
			}
			outcome.Action = ActionRefresh
		default:
			if dirExists(mirror) {
				s.Output.Warn("Replacing %s: not a valid repository", mirror)
				if err := os.RemoveAll(mirror); err != nil {
					return nil, fmt.Errorf("removing stale mirror %s: %w", mirror, err)
				}
			}
			if err := s.adopt(ctx, mode); err != nil {
				return nil, err
			}
			outcome.Action = ActionAdopt
		}

	case stateAbsent:
		if err := s.adopt(ctx, mode); err != nil {
			return nil, err
		}
		outcome.Action = ActionAdopt
	}

	s.Logger.Info("setup complete",
		"mode", outcome.Mode, "action", outcome.Action, "migrated", outcome.Migrated)
	return outcome, nil
}

// refresh updates an existing mirror in place: re-point the origin
// remote at the endpoint for mode, make sure the primary branch is
// checked out, and pull the latest state. Every step is safe to
// repeat; the update is forced so a diverged or detached mirror is
// reset to upstream rather than aborting.
func (s *Setup) refresh(ctx context.Context, mode AccessMode) error {
	mirror := s.Config.MasterRepoDir()
	repo := git.NewRepository(mirror)

	s.Output.Detail("Updating spec repo at %s", mirror)
	if err := repo.SetRemoteURL(ctx, s.endpoint(mode)); err != nil {
		return fmt.Errorf("setting remote URL: %w", err)
	}
	if err := repo.Checkout(ctx, s.Branch); err != nil {
		return fmt.Errorf("checking out %s: %w", s.Branch, err)
	}

	sources := source.NewManager(s.Config.ReposDir())
	if err := sources.Update(ctx, config.MasterName, true); err != nil {
		return fmt.Errorf("updating %s: %w", config.MasterName, err)
	}
	return nil
}

// adopt clones the mirror fresh from the endpoint for mode.
func (s *Setup) adopt(ctx context.Context, mode AccessMode) error {
	if err := s.Config.EnsureReposDir(); err != nil {
		return err
	}

	shallow := shallowClone(mode, s.NoShallow)
	s.Output.Detail("Cloning spec repo into %s", s.Config.MasterRepoDir())
	s.Logger.Info("adopting mirror",
		"url", s.endpoint(mode), "branch", s.Branch, "shallow", shallow)

	sources := source.NewManager(s.Config.ReposDir())
	if err := sources.Add(ctx, config.MasterName, s.endpoint(mode), s.Branch, shallow); err != nil {
		return fmt.Errorf("cloning %s: %w", config.MasterName, err)
	}
	return nil
}
