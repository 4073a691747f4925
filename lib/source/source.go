// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spindle-project/spindle/lib/git"
	"github.com/spindle-project/spindle/lib/workdir"
)

// Manager performs repository operations under a single storage root
// (the repos directory). It holds no other state: every call inspects
// the filesystem fresh, so concurrent external changes are picked up
// on the next operation.
type Manager struct {
	root string
}

// NewManager returns a Manager for the given repos directory. The
// directory does not need to exist yet; Add creates it on demand.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root returns the repos directory.
func (m *Manager) Root() string {
	return m.root
}

// Path returns the directory a repo with the given name occupies (or
// would occupy) under the root.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.root, name)
}

// validateName rejects names that would escape the root or collide
// with hidden entries. Repo names are single path segments.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("repo name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("repo name %q must not contain path separators", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("repo name %q must not start with a dot", name)
	}
	return nil
}

// Add clones url at branch into a new repo named name. It fails when
// anything already occupies the name — callers that want to replace an
// entry must remove it first — and when the remote is unreachable.
func (m *Manager) Add(ctx context.Context, name, url, branch string, shallow bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	target := m.Path(name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("repo %q already exists at %s", name, target)
	}
	if err := os.MkdirAll(m.root, 0755); err != nil {
		return fmt.Errorf("creating repos directory %s: %w", m.root, err)
	}

	if err := git.Clone(ctx, url, target, git.CloneOptions{Branch: branch, Shallow: shallow}); err != nil {
		return fmt.Errorf("adding repo %q: %w", name, err)
	}
	return nil
}

// Update fetches and merges the latest remote state into the named
// repo. Without force, only fast-forward merges are accepted and
// anything else is an error. With force, the local branch is reset
// hard to the fetched upstream, discarding local divergence — setup
// uses this so a detached or diverged mirror never blocks a run.
//
// The git commands run inside a scoped working-directory change that
// is restored on every exit path.
func (m *Manager) Update(ctx context.Context, name string, force bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	target := m.Path(name)
	if !git.IsRepository(target) {
		return fmt.Errorf("repo %q not found at %s", name, target)
	}

	err := workdir.In(target, func() error {
		repo := git.NewRepository(".")
		if force {
			if _, err := repo.Run(ctx, "fetch", "origin"); err != nil {
				return err
			}
			_, err := repo.Run(ctx, "reset", "--hard", "@{upstream}")
			return err
		}
		_, err := repo.Run(ctx, "pull", "--ff-only")
		return err
	})
	if err != nil {
		return fmt.Errorf("updating repo %q: %w", name, err)
	}
	return nil
}

// All returns the names of the repos under the root in sorted order.
// Hidden entries and stray files are skipped. A missing root means no
// repos, not an error.
func (m *Manager) All() ([]string, error) {
	entries, err := os.ReadDir(m.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading repos directory %s: %w", m.root, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the named repo from disk.
func (m *Manager) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	target := m.Path(name)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("repo %q not found at %s: %w", name, target, err)
	}
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("removing repo %q: %w", name, err)
	}
	return nil
}
