// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	pyFromRe   = regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`)
	pyImportRe = regexp.MustCompile(`^import\s+(.+)$`)
)

// resolvePython handles `import a.b [as c], d` and `from X import names`.
func (r *Resolver) resolvePython(origin, raw string) (string, bool) {
	stmt := normalizePython(raw)
	if m := pyFromRe.FindStringSubmatch(stmt); m != nil {
		return r.pythonFrom(origin, m[1], importedNames(m[2]))
	}
	if m := pyImportRe.FindStringSubmatch(stmt); m != nil {
		for _, mod := range importedNames(m[1]) {
			if p, ok := r.pythonFrom(origin, mod, nil); ok {
				return p, true
			}
		}
	}
	return "", false
}

// pythonFrom resolves module, then each name as a submodule of it. A module
// with leading dots is relative to origin's package.
func (r *Resolver) pythonFrom(origin, module string, names []string) (string, bool) {
	dots := len(module) - len(strings.TrimLeft(module, "."))
	var segs []string
	if rest := module[dots:]; rest != "" {
		segs = strings.Split(rest, ".")
	}

	var bases []string
	if dots > 0 {
		base := filepath.Dir(origin)
		for i := 1; i < dots; i++ {
			base = filepath.Dir(base)
		}
		bases = []string{base}
	} else {
		if len(segs) == 0 {
			return "", false
		}
		bases = r.pythonBases(origin, segs[0])
	}

	for _, base := range bases {
		if len(segs) > 0 {
			if p, ok := r.pythonModule(filepath.Join(append([]string{base}, segs...)...)); ok {
				return p, true
			}
		}
		for _, name := range names {
			parts := append(append([]string{base}, segs...), name)
			if p, ok := r.pythonModule(filepath.Join(parts...)); ok {
				return p, true
			}
		}
	}
	return "", false
}

// pythonBases lists the directories an absolute import may be rooted at:
// origin's directory and its ancestors up to the project root, then the
// parent of every project directory named like the first module segment.
func (r *Resolver) pythonBases(origin, first string) []string {
	seen := make(map[string]bool)
	var bases []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			bases = append(bases, d)
		}
	}

	for d := filepath.Dir(origin); strings.HasPrefix(d, r.root); d = filepath.Dir(d) {
		add(d)
		if d == r.root {
			break
		}
	}
	add(r.root)
	for _, d := range r.dirsByName[first] {
		add(filepath.Dir(d))
	}
	return bases
}

// pythonModule checks the module file, then the package form.
func (r *Resolver) pythonModule(p string) (string, bool) {
	if candidate := p + ".py"; r.known[candidate] {
		return candidate, true
	}
	if candidate := filepath.Join(p, "__init__.py"); r.known[candidate] {
		return candidate, true
	}
	return "", false
}

// normalizePython drops comments and joins continuation lines.
func normalizePython(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		if idx := strings.IndexByte(l, '#'); idx >= 0 {
			lines[i] = l[:idx]
		}
	}
	s := strings.Join(lines, " ")
	s = strings.NewReplacer("\\", " ", "(", " ", ")", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// importedNames splits "a as b, c" into ["a", "c"], dropping wildcards.
func importedNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 || fields[0] == "*" {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}
