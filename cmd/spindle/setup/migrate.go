// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// migrate moves the pre-repos layout into the repos directory. Every
// visible entry directly under the storage root moves into reposRoot
// under the same name, because older installations kept independently
// added repos as siblings of the mirror there, not just the mirror
// itself. The repos directory is excluded from the move (no self-move)
// and dotfiles stay behind, since the storage root also holds
// configuration and caches that were never part of the repo layout.
//
// Any entry that fails to move fails the whole migration. The caller
// aborts setup in that case rather than adopting a half-migrated
// mirror.
func migrate(storageRoot, reposRoot string) error {
	if err := os.MkdirAll(reposRoot, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", reposRoot, err)
	}

	entries, err := os.ReadDir(storageRoot)
	if err != nil {
		return fmt.Errorf("reading %s: %w", storageRoot, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		from := filepath.Join(storageRoot, name)
		if from == reposRoot {
			continue
		}
		to := filepath.Join(reposRoot, name)
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("moving %s to %s: %w", from, to, err)
		}
	}
	return nil
}
