// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"a/b.py", Python},
		{"App.JSX", JavaScript},
		{"index.ts", JavaScript},
		{"view.tsx", JavaScript},
		{"lib.mjs", JavaScript},
		{"Main.java", Java},
		{"main.go", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageForPath(tt.path))
		})
	}
}

func TestParsedFile_CallablesAndMethodCount(t *testing.T) {
	pf := &ParsedFile{
		Classes: []ClassRecord{
			{Name: "A", Methods: []FunctionRecord{{Name: "a1"}, {Name: "a2"}}},
			{Name: "B", Methods: []FunctionRecord{{Name: "b1"}}},
		},
		Functions: []FunctionRecord{{Name: "f"}},
	}

	assert.Equal(t, 3, pf.MethodCount())
	names := make([]string, 0)
	for _, c := range pf.Callables() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"f", "a1", "a2", "b1"}, names)
}

func TestParameterRecord_HasType(t *testing.T) {
	assert.True(t, ParameterRecord{Name: "x", Type: "int"}.HasType())
	assert.False(t, ParameterRecord{Name: "x"}.HasType())
}
