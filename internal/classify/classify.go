// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package classify decides by name alone which functions and methods carry
// business logic and are therefore worth generating tests for.
package classify

import (
	"strings"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// skipKeywords mark scaffolding; any match excludes the name.
var skipKeywords = []string{
	"test_", "_test", "setup", "teardown", "mock", "stub", "helper", "util",
}

// keepKeywords mark operations; a name qualifies when it contains one.
var keepKeywords = []string{
	"create", "update", "delete", "process", "calculate", "validate",
	"transform", "generate", "execute", "perform", "handle", "manage",
}

// IsBusinessLogic reports whether name looks like a business operation.
// Matching is case-insensitive substring matching; exclusions win.
func IsBusinessLogic(name string) bool {
	lower := strings.ToLower(name)
	if isDunder(lower) {
		return false
	}
	for _, kw := range skipKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range keepKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// Entries returns the business-logic entries of pf: one per class with at
// least one qualifying method, then one for the qualifying free functions.
// It returns nil when nothing qualifies.
func Entries(pf *types.ParsedFile) []types.BusinessLogicEntry {
	var entries []types.BusinessLogicEntry
	for _, c := range pf.Classes {
		if methods := filter(c.Methods); len(methods) > 0 {
			entries = append(entries, types.BusinessLogicEntry{
				Kind:    types.EntryClass,
				Name:    c.Name,
				Methods: methods,
			})
		}
	}
	if functions := filter(pf.Functions); len(functions) > 0 {
		entries = append(entries, types.BusinessLogicEntry{
			Kind:      types.EntryFunctions,
			Functions: functions,
		})
	}
	return entries
}

func filter(fns []types.FunctionRecord) []types.FunctionRecord {
	var out []types.FunctionRecord
	for _, f := range fns {
		if IsBusinessLogic(f.Name) {
			out = append(out, f)
		}
	}
	return out
}
