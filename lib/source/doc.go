// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package source manages the local spec repositories stored under the
// spindle repos directory. A source is a named git clone of a spec
// repository; the canonical mirror (config.MasterName) is one of them,
// created and maintained by "spindle setup", while the rest are added
// by the user via "spindle repo add".
//
// [Manager.Add] and [Manager.Update] are the two mutation primitives
// the setup core dispatches to: Add performs the initial clone and
// Update fetches and merges the latest remote state, with a force mode
// that resets to the fetched upstream instead of failing on divergence.
package source
