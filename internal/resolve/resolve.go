// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolve maps raw import statements to files parsed in the same
// analysis run. Resolution is heuristic: external packages, wildcard imports
// and anything else that does not land on a known file resolve to nothing.
package resolve

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// Resolver holds the per-run indexes used to resolve imports. It is built
// once after every file is parsed and is read-only afterwards, so Resolve may
// be called from many goroutines.
type Resolver struct {
	root       string
	known      map[string]bool
	dirsByName map[string][]string // directory base name -> directories, shallowest first
	classes    map[string][]string // Java class simple name -> declaring files, sorted
}

// New indexes files, all of which live under root.
func New(root string, files []*types.ParsedFile) *Resolver {
	r := &Resolver{
		root:       filepath.Clean(root),
		known:      make(map[string]bool, len(files)),
		dirsByName: make(map[string][]string),
		classes:    make(map[string][]string),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		r.known[f.Path] = true
		for d := filepath.Dir(f.Path); d != r.root && strings.HasPrefix(d, r.root); d = filepath.Dir(d) {
			if dirs[d] {
				break
			}
			dirs[d] = true
		}
		if f.Language == types.Java {
			for _, c := range f.Classes {
				r.classes[c.Name] = append(r.classes[c.Name], f.Path)
			}
		}
	}

	for d := range dirs {
		name := filepath.Base(d)
		r.dirsByName[name] = append(r.dirsByName[name], d)
	}
	for _, ds := range r.dirsByName {
		sort.Slice(ds, func(i, j int) bool {
			di, dj := depth(ds[i]), depth(ds[j])
			if di != dj {
				return di < dj
			}
			return ds[i] < ds[j]
		})
	}
	for name, fs := range r.classes {
		r.classes[name] = dedupeSorted(fs)
	}
	return r
}

// Resolve is a convenience wrapper that builds a Resolver for a single lookup.
func Resolve(origin, raw, root string, files []*types.ParsedFile) (string, bool) {
	return New(root, files).Resolve(origin, raw)
}

// Known reports whether path was parsed in this run.
func (r *Resolver) Known(path string) bool {
	return r.known[path]
}

// Resolve maps the import statement raw, found in origin, to a known file.
// It returns false for external or unresolvable imports.
func (r *Resolver) Resolve(origin, raw string) (string, bool) {
	switch types.LanguageForPath(origin) {
	case types.Python:
		return r.resolvePython(origin, raw)
	case types.JavaScript:
		return r.resolveScript(origin, raw)
	case types.Java:
		return r.resolveJava(raw)
	}
	return "", false
}

func depth(p string) int {
	return strings.Count(p, string(filepath.Separator))
}

func dedupeSorted(in []string) []string {
	sort.Strings(in)
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}
