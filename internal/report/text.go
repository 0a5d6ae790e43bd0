// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

const (
	defaultMaxLines = 400
	maxLineLength   = 100
)

// TextConfig configures the text outline.
type TextConfig struct {
	MaxLines int // Line budget for file sections (default 400)
}

// RenderText produces a compact outline of the report: files in descending
// rank order with their classes, methods and free functions, added whole
// until the line budget is spent.
func RenderText(r *types.AnalysisReport, cfg TextConfig) string {
	budget := cfg.MaxLines
	if budget <= 0 {
		budget = defaultMaxLines
	}

	nodes := append([]types.GraphNode(nil), r.DependencyGraph.Nodes...)
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Rank != nodes[j].Rank {
			return nodes[i].Rank > nodes[j].Rank
		}
		return nodes[i].ID < nodes[j].ID
	})

	var body strings.Builder
	used, shown := 0, 0
	for _, n := range nodes {
		pf, ok := r.Files[n.ID]
		if !ok {
			continue
		}
		section := fileSection(r.ProjectPath, n, pf)
		if used+len(section) > budget {
			break
		}
		for _, l := range section {
			body.WriteString(truncate(l) + "\n")
		}
		used += len(section)
		shown++
	}

	s := r.Summary
	var out strings.Builder
	fmt.Fprintf(&out, "Project map of %s (%d/%d files)\n", r.ProjectPath, shown, len(nodes))
	if r.Revision != "" {
		fmt.Fprintf(&out, "revision %s\n", r.Revision)
	}
	fmt.Fprintf(&out, "%d classes, %d methods, %d functions, %d/%d imports resolved, %d business-logic files, %d failed\n",
		s.TotalClasses, s.TotalMethods, s.TotalFunctions, s.ResolvedImports, s.TotalImports, s.BusinessLogicFiles, s.FailedFiles)
	out.WriteString(body.String())
	return out.String()
}

func fileSection(root string, n types.GraphNode, pf *types.ParsedFile) []string {
	path := n.ID
	if rel, err := filepath.Rel(root, n.ID); err == nil {
		path = filepath.ToSlash(rel)
	}
	lines := []string{fmt.Sprintf("%s (%s, imports %d, imported by %d)", path, n.Language, n.Imports, n.ImportedBy)}
	for _, c := range pf.Classes {
		lines = append(lines, fmt.Sprintf("  class %s:%d", c.Name, c.Line))
		for _, m := range c.Methods {
			lines = append(lines, "    "+signature(m))
		}
	}
	for _, f := range pf.Functions {
		lines = append(lines, "  "+signature(f))
	}
	return lines
}

func signature(f types.FunctionRecord) string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		if p.HasType() {
			params = append(params, p.Name+": "+p.Type)
		} else {
			params = append(params, p.Name)
		}
	}
	return fmt.Sprintf("%s(%s):%d", f.Name, strings.Join(params, ", "), f.Line)
}

// truncate caps line at maxLineLength bytes, cutting on a rune boundary.
func truncate(line string) string {
	if len(line) <= maxLineLength {
		return line
	}
	cut := maxLineLength - 3
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "..."
}
