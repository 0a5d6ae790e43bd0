// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// printer writes styled status lines.
type printer struct {
	w io.Writer
}

func (p printer) success(msg string) { fmt.Fprintln(p.w, successStyle.Render("✔ "+msg)) }
func (p printer) failure(msg string) { fmt.Fprintln(p.w, errorStyle.Render("✘ "+msg)) }
func (p printer) info(msg string)    { fmt.Fprintln(p.w, infoStyle.Render(msg)) }
func (p printer) step(msg string)    { fmt.Fprintln(p.w, stepStyle.Render("   "+msg)) }

// summary prints the headline counts of a report.
func (p printer) summary(r *types.AnalysisReport) {
	s := r.Summary
	p.info("Analysis summary")
	p.step(fmt.Sprintf("Total files: %d", s.TotalFiles))
	p.step(fmt.Sprintf("Total classes: %d", s.TotalClasses))
	p.step(fmt.Sprintf("Total functions: %d", s.TotalFunctions))
	p.step(fmt.Sprintf("Total methods: %d", s.TotalMethods))
	p.step(fmt.Sprintf("Imports resolved: %d/%d", s.ResolvedImports, s.TotalImports))
	p.step(fmt.Sprintf("Languages: %s", languages(s.Languages)))
	p.step(fmt.Sprintf("Business logic files: %d", s.BusinessLogicFiles))
	if s.FailedFiles > 0 {
		p.failure(fmt.Sprintf("%d files could not be parsed", s.FailedFiles))
		for _, f := range r.Failures {
			p.step(fmt.Sprintf("%s: %s", f.Path, f.Reason))
		}
	}
}

func languages(counts map[types.Language]int) string {
	if len(counts) == 0 {
		return "none"
	}
	names := make([]string, 0, len(counts))
	for lang := range counts {
		names = append(names, string(lang))
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", n, counts[types.Language(n)]))
	}
	return strings.Join(parts, ", ")
}
