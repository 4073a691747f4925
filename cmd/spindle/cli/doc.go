// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the spindle command framework: a [Command]
// tree with pflag flag sets, structured help output, and Levenshtein
// suggestions for mistyped commands and flags. Commands are assembled
// into a tree in cmd/spindle/commands and dispatched from main.
//
// Command handlers return errors instead of exiting; main formats the
// error and chooses the exit code. [ExitError] lets a handler request
// a specific code without an extra error line, and [ToolError] carries
// a category (validation, not-found, conflict, internal) so callers
// can distinguish bad input from real failures.
package cli
