// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
)

// scriptExts are tried, in order, after an extensionless specifier.
var scriptExts = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

var quotedRe = regexp.MustCompile(`["']([^"'\n]+)["']`)

// resolveScript resolves the first quoted specifier of an import, export-from
// or require statement. Bare specifiers name packages and never resolve.
func (r *Resolver) resolveScript(origin, raw string) (string, bool) {
	m := quotedRe.FindStringSubmatch(raw)
	if m == nil || !isRelative(m[1]) {
		return "", false
	}
	base := filepath.Join(filepath.Dir(origin), filepath.FromSlash(m[1]))

	if r.known[base] {
		return base, true
	}
	for _, ext := range scriptExts {
		if candidate := base + ext; r.known[candidate] {
			return candidate, true
		}
	}
	for _, ext := range scriptExts {
		if candidate := filepath.Join(base, "index"+ext); r.known[candidate] {
			return candidate, true
		}
	}
	return "", false
}

func isRelative(spec string) bool {
	return spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
