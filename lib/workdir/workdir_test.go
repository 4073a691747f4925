// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package workdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Tests in this package mutate the process working directory, so they
// must not run in parallel with each other.

func TestIn_RunsInDirectoryAndRestores(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	target := t.TempDir()

	var inside string
	err = In(target, func() error {
		inside, err = os.Getwd()
		return err
	})
	if err != nil {
		t.Fatalf("In: %v", err)
	}

	// macOS returns /private-prefixed paths from Getwd; resolve both
	// sides before comparing.
	wantInside, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	gotInside, err := filepath.EvalSymlinks(inside)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if gotInside != wantInside {
		t.Errorf("fn ran in %q, want %q", gotInside, wantInside)
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd after: %v", err)
	}
	if after != before {
		t.Errorf("working directory = %q after In, want %q", after, before)
	}
}

func TestIn_RestoresOnError(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	wantErr := errors.New("boom")
	err = In(t.TempDir(), func() error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("In error = %v, want %v", err, wantErr)
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd after: %v", err)
	}
	if after != before {
		t.Errorf("working directory = %q after failing In, want %q", after, before)
	}
}

func TestIn_MissingDirectory(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	called := false
	err = In(filepath.Join(t.TempDir(), "missing"), func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error entering a missing directory")
	}
	if called {
		t.Error("fn was called despite the chdir failure")
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd after: %v", err)
	}
	if after != before {
		t.Errorf("working directory = %q, want %q", after, before)
	}
}
