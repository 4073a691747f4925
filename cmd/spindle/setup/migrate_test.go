// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestMigrate_MovesVisibleEntries(t *testing.T) {
	home := t.TempDir()
	repos := filepath.Join(home, "repos")

	writeFile(t, filepath.Join(home, "master", "specs", "a.yaml"), "a")
	writeFile(t, filepath.Join(home, "other-repo", "specs", "b.yaml"), "b")

	if err := migrate(home, repos); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	got := dirNames(t, repos)
	want := []string{"master", "other-repo"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("repos dir = %v, want %v", got, want)
	}

	// Contents travel with the move.
	if _, err := os.Stat(filepath.Join(repos, "master", "specs", "a.yaml")); err != nil {
		t.Errorf("moved entry lost its contents: %v", err)
	}

	// The storage root keeps only the repos directory.
	if got := dirNames(t, home); len(got) != 1 || got[0] != "repos" {
		t.Errorf("storage root = %v, want [repos]", got)
	}
}

func TestMigrate_LeavesDotfilesBehind(t *testing.T) {
	home := t.TempDir()
	repos := filepath.Join(home, "repos")

	writeFile(t, filepath.Join(home, "master", "x"), "x")
	writeFile(t, filepath.Join(home, ".config"), "cfg")
	mkdirAll(t, filepath.Join(home, ".cache"))

	if err := migrate(home, repos); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{".config", ".cache"} {
		if _, err := os.Stat(filepath.Join(home, name)); err != nil {
			t.Errorf("%s should stay in the storage root: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(repos, ".config")); !os.IsNotExist(err) {
		t.Errorf(".config should not be moved (err=%v)", err)
	}
}

func TestMigrate_NoSelfMove(t *testing.T) {
	home := t.TempDir()
	repos := filepath.Join(home, "repos")

	// The repos directory already exists with content; it must not be
	// moved into itself.
	writeFile(t, filepath.Join(repos, "existing", "x"), "x")
	writeFile(t, filepath.Join(home, "master", "y"), "y")

	if err := migrate(home, repos); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(repos, "existing", "x")); err != nil {
		t.Errorf("pre-existing repos content lost: %v", err)
	}
	if _, err := os.Stat(filepath.Join(repos, "repos")); !os.IsNotExist(err) {
		t.Errorf("repos dir was moved into itself (err=%v)", err)
	}
	if _, err := os.Stat(filepath.Join(repos, "master", "y")); err != nil {
		t.Errorf("master not migrated: %v", err)
	}
}

func TestMigrate_CreatesReposDir(t *testing.T) {
	home := t.TempDir()
	repos := filepath.Join(home, "repos")

	if err := migrate(home, repos); err != nil {
		t.Fatalf("migrate on empty root: %v", err)
	}
	info, err := os.Stat(repos)
	if err != nil || !info.IsDir() {
		t.Errorf("repos dir not created (err=%v)", err)
	}
}

func TestMigrate_MissingRootFails(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nonexistent")
	repos := filepath.Join(t.TempDir(), "repos")
	if err := migrate(home, repos); err == nil {
		t.Fatal("expected error migrating a missing storage root")
	}
}
