// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan walks a project tree and lists the source files to analyze.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultIgnoreDirs are directory names that are never descended into.
// Hidden directories are skipped separately; hidden files are kept.
var DefaultIgnoreDirs = []string{
	"node_modules",
	"__pycache__",
	"target",
	"build",
	"dist",
	"venv",
}

// Options controls a walk.
type Options struct {
	// IgnoreDirs are extra directory names to skip, on top of DefaultIgnoreDirs.
	IgnoreDirs []string
	// Gitignore applies .gitignore and .git/info/exclude patterns found
	// under the root.
	Gitignore bool
	// Include selects files by path. Nil accepts every file.
	Include func(path string) bool
}

// Walk returns the absolute paths of the files under root that pass opts,
// sorted lexically. Unreadable entries are skipped.
func Walk(ctx context.Context, root string, opts Options) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absRoot)
	}

	skip := make(map[string]bool, len(DefaultIgnoreDirs)+len(opts.IgnoreDirs))
	for _, d := range DefaultIgnoreDirs {
		skip[d] = true
	}
	for _, d := range opts.IgnoreDirs {
		skip[d] = true
	}

	var matcher gitignore.Matcher
	if opts.Gitignore {
		matcher = loadGitignore(absRoot)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == absRoot {
			return nil
		}

		name := d.Name()
		if d.IsDir() && (skip[name] || isHidden(name)) {
			return filepath.SkipDir
		}

		if matcher != nil {
			rel, relErr := filepath.Rel(absRoot, path)
			if relErr == nil && matcher.Match(strings.Split(rel, string(filepath.Separator)), d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() || !isRegularFile(path, d) {
			return nil
		}
		if opts.Include != nil && !opts.Include(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// isRegularFile reports whether d is a regular file or a symlink to one.
// Symlinked directories are not followed.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// loadGitignore reads every .gitignore under root. Read errors leave the
// patterns collected so far in place.
func loadGitignore(root string) gitignore.Matcher {
	patterns, _ := gitignore.ReadPatterns(osfs.New(root), nil)
	return gitignore.NewMatcher(patterns)
}
