// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	printer := NewPrinter(&buffer)

	printer.Section("Setting up the spindle spec repo")
	printer.Detail("cloning %s", "https://example.test/specs.git")
	printer.Done("Setup completed (%s access)", "read-only")

	output := buffer.String()
	if strings.Contains(output, "\x1b[") {
		t.Errorf("output contains ANSI escapes for a non-terminal writer:\n%q", output)
	}
	for _, want := range []string{
		"==> Setting up the spindle spec repo",
		"  cloning https://example.test/specs.git",
		"Setup completed (read-only access)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestPrinter_DetailIndented(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	printer := NewPrinter(&buffer)
	printer.Detail("line one")
	printer.Warn("line two")

	for _, line := range strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q is not indented", line)
		}
	}
}
