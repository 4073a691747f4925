// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package git provides typed access to the git CLI for spec repository
// operations. Spindle uses git for mirror management: cloning the spec
// repo, switching its remote between the read-only and push endpoints,
// and pulling updates. All commands target a specific repository
// directory via the -C flag, which is automatically injected by all
// Repository methods.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository represents a git repository at a specific directory. All
// operations target this directory via "git -C <dir>". There is no
// default directory — callers must always specify which repository
// they mean.
type Repository struct {
	dir string
}

// NewRepository returns a Repository targeting the given directory.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout. Stderr is captured separately and included in error messages
// on failure.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, "git", fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// RemoteURL returns the configured URL of the origin remote.
func (r *Repository) RemoteURL(ctx context.Context) (string, error) {
	output, err := r.Run(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// SetRemoteURL points the origin remote at url. Safe to repeat: setting
// the same URL again is a no-op as far as git is concerned.
func (r *Repository) SetRemoteURL(ctx context.Context, url string) error {
	_, err := r.Run(ctx, "remote", "set-url", "origin", url)
	return err
}

// Checkout switches the working tree to branch. Checking out the branch
// that is already current succeeds without touching anything.
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	_, err := r.Run(ctx, "checkout", branch)
	return err
}

// IsRepository reports whether dir looks like a git working tree: a
// directory containing a .git entry. This is a pure filesystem check —
// no git process is spawned — so it is safe to call on paths that may
// not exist at all.
func IsRepository(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// CloneOptions controls a Clone call.
type CloneOptions struct {
	// Branch selects the branch to check out after cloning. Empty means
	// the remote's default branch.
	Branch string

	// Shallow limits history to the most recent commit (--depth 1).
	// Cheap for read-only mirrors; unsuitable for repositories that
	// will be pushed from, since pushes can fail on missing ancestry.
	Shallow bool
}

// Clone clones url into target, which must not already exist. Stderr is
// captured and included in the error on failure, since git writes its
// diagnostics (authentication failures, unreachable remotes) there.
func Clone(ctx context.Context, url, target string, options CloneOptions) error {
	args := []string{"clone"}
	if options.Shallow {
		args = append(args, "--depth", "1")
	}
	if options.Branch != "" {
		args = append(args, "--branch", options.Branch)
	}
	args = append(args, "--", url, target)

	var stderr bytes.Buffer
	command := exec.CommandContext(ctx, "git", args...)
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return fmt.Errorf("git clone %s into %s: %w (stderr: %s)",
			url, target, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
