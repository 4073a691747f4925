// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package repo implements the "spindle repo" command group: add,
// update, list, and remove local spec repositories. The master mirror
// managed by "spindle setup" is just another entry under the repos
// directory; these commands treat it the same as any user-added repo.
package repo
