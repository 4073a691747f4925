// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package workdir provides scoped working-directory changes. The
// process working directory is shared mutable state, so every change
// made to run a command inside a repository must be undone before
// control returns to the caller — on every exit path, including
// failures of the wrapped function.
package workdir

import (
	"fmt"
	"os"
)

// In runs fn with the process working directory set to dir, then
// restores the previous working directory. The restore happens whether
// fn succeeds or fails; a restore failure is only reported when fn
// itself succeeded, so the original error is never masked.
func In(dir string, fn func() error) error {
	previous, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("reading working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("entering %s: %w", dir, err)
	}

	runErr := fn()

	if err := os.Chdir(previous); err != nil {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("restoring working directory %s: %w", previous, err)
	}
	return runErr
}
