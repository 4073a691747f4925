// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import "os"

// state is the three-way classification of the on-disk layout. The
// dispatcher switches exhaustively over it, so a future layout variant
// is a compile-visible change rather than a scattered existence check.
type state int

const (
	// stateAbsent: no mirror anywhere; setup clones fresh.
	stateAbsent state = iota

	// stateCurrent: the mirror exists at its canonical location under
	// the repos directory; setup refreshes it in place.
	stateCurrent

	// stateLegacy: the mirror exists directly under the storage root,
	// the layout used before the repos directory was introduced; setup
	// migrates first.
	stateLegacy
)

func (s state) String() string {
	switch s {
	case stateCurrent:
		return "current"
	case stateLegacy:
		return "legacy"
	default:
		return "absent"
	}
}

// classify inspects the filesystem and returns exactly one state.
// The current location is checked first so a migrated environment is
// never misclassified as legacy by stale artifacts.
func classify(currentDir, legacyDir string) state {
	if dirExists(currentDir) {
		return stateCurrent
	}
	if dirExists(legacyDir) {
		return stateLegacy
	}
	return stateAbsent
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
