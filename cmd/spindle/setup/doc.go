// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package setup brings the local mirror of the canonical spec
// repository into a known-good state. One run resolves the access mode
// (read-only or push), classifies the on-disk layout (mirror present,
// present under the pre-repos legacy layout, or absent), and performs
// exactly one of: refresh the existing mirror, migrate the legacy
// layout and then adopt, or clone fresh.
//
// The run is idempotent: a second invocation against a healthy mirror
// re-applies the remote URL and branch and fast-forwards, changing
// nothing else.
package setup
