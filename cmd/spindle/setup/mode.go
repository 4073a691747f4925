// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"context"

	"github.com/spindle-project/spindle/lib/git"
)

// AccessMode is the URL mode a setup run converges on. It selects which
// of the two canonical endpoints the mirror's origin remote points at.
type AccessMode string

const (
	// ModeReadOnly uses the anonymous HTTPS endpoint.
	ModeReadOnly AccessMode = "read-only"

	// ModePush uses the SSH endpoint, for contributors with write
	// access to the canonical spec repository.
	ModePush AccessMode = "push"
)

// resolveMode determines the access mode for this run. Priority order:
// an explicit push request wins; otherwise an existing mirror whose
// recorded remote URL is the push endpoint stays in push mode; anything
// else is read-only.
//
// Never fails. If the mirror is absent or its remote URL cannot be
// read, the mode falls back to read-only rather than aborting setup —
// the refresh sequence rewrites the remote URL anyway.
func resolveMode(ctx context.Context, requestPush bool, mirrorDir, pushURL string) AccessMode {
	if requestPush {
		return ModePush
	}
	if !git.IsRepository(mirrorDir) {
		return ModeReadOnly
	}
	url, err := git.NewRepository(mirrorDir).RemoteURL(ctx)
	if err != nil {
		return ModeReadOnly
	}
	if url == pushURL {
		return ModePush
	}
	return ModeReadOnly
}

// endpoint selects the remote URL for mode.
func (s *Setup) endpoint(mode AccessMode) string {
	if mode == ModePush {
		return s.PushURL
	}
	return s.ReadOnlyURL
}

// shallowClone reports whether a fresh adopt should clone shallow.
// Shallow is the default; push mode disables it because pushing needs
// full history, and an explicit no-shallow request always wins.
func shallowClone(mode AccessMode, noShallow bool) bool {
	if noShallow {
		return false
	}
	return mode != ModePush
}
