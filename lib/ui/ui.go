// Copyright 2026 The Spindle Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui renders the spindle CLI's user-facing output: section
// banners framing multi-step operations, indented detail lines, and
// the final status line. Styling degrades to plain text when the
// output is not a terminal, so piped output stays parseable.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes styled status output for one command invocation. All
// output goes to a single writer (normally stderr — stdout is reserved
// for machine-readable command output).
type Printer struct {
	out io.Writer

	sectionStyle lipgloss.Style
	detailStyle  lipgloss.Style
	doneStyle    lipgloss.Style
	warnStyle    lipgloss.Style
}

// NewPrinter returns a Printer for out. Color is enabled only when out
// is a terminal; the lipgloss renderer is bound to out rather than the
// process-global default so tests and pipes behave deterministically.
func NewPrinter(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)
	if file, ok := out.(*os.File); ok && !term.IsTerminal(int(file.Fd())) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:          out,
		sectionStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		detailStyle:  renderer.NewStyle(),
		doneStyle:    renderer.NewStyle().Foreground(lipgloss.Color("2")),
		warnStyle:    renderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Section prints a banner line opening a named phase of the command.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.out, "%s\n", p.sectionStyle.Render("==> "+title))
}

// Detail prints an indented progress line under the current section.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintf(p.out, "  %s\n", p.detailStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints an indented warning line under the current section.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "  %s\n", p.warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Done prints the closing status line for the command.
func (p *Printer) Done(format string, args ...any) {
	fmt.Fprintf(p.out, "\n%s\n", p.doneStyle.Render(fmt.Sprintf(format, args...)))
}
