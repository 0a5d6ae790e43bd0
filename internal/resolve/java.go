// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"path/filepath"
	"strings"
)

// resolveJava looks up the imported class by simple name. A file whose
// directory matches the package path wins; otherwise the first declaring file
// in path order is used. Wildcard imports do not resolve.
func (r *Resolver) resolveJava(raw string) (string, bool) {
	stmt := strings.TrimSpace(raw)
	stmt = strings.TrimPrefix(stmt, "import")
	stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
	stmt = strings.TrimSpace(stmt)

	static := false
	if rest := strings.TrimPrefix(stmt, "static"); rest != stmt && startsWithSpace(rest) {
		static = true
		stmt = rest
	}
	name := strings.Join(strings.Fields(stmt), "")
	if name == "" || strings.HasSuffix(name, "*") {
		return "", false
	}

	segs := strings.Split(name, ".")
	// A static import names a member; its class is the segment before it.
	var tries []int
	tries = append(tries, len(segs)-1)
	if static && len(segs) > 1 {
		tries = append(tries, len(segs)-2)
	}

	for _, i := range tries {
		if p, ok := r.javaClass(segs[i], segs[:i]); ok {
			return p, true
		}
	}
	return "", false
}

func (r *Resolver) javaClass(class string, pkg []string) (string, bool) {
	files := r.classes[class]
	if len(files) == 0 {
		return "", false
	}
	if len(pkg) > 0 {
		want := string(filepath.Separator) + filepath.Join(pkg...)
		for _, f := range files {
			if strings.HasSuffix(filepath.Dir(f), want) {
				return f, true
			}
		}
	}
	return files[0], true
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r')
}
