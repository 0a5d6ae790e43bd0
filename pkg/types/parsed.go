// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the records shared across IntelliTest packages: the
// normalized structure of a parsed source file and the analysis report built
// from it.
package types

import (
	"path/filepath"
	"strings"
)

// Language identifies the grammar family a source file was parsed with.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript" // JavaScript and TypeScript sources
	Java       Language = "java"
)

// extLanguages maps a lower-cased file extension to its language family.
var extLanguages = map[string]Language{
	".py":   Python,
	".js":   JavaScript,
	".jsx":  JavaScript,
	".mjs":  JavaScript,
	".cjs":  JavaScript,
	".ts":   JavaScript,
	".tsx":  JavaScript,
	".java": Java,
}

// LanguageForExt returns the language for a file extension such as ".py".
// The empty Language is returned for unsupported extensions.
func LanguageForExt(ext string) Language {
	return extLanguages[strings.ToLower(ext)]
}

// LanguageForPath returns the language for the extension of path.
func LanguageForPath(path string) Language {
	return LanguageForExt(filepath.Ext(path))
}

// UnknownType is the declared type of a parameter that carries no annotation.
const UnknownType = ""

// ParameterRecord is one formal parameter of a function or method.
type ParameterRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"` // UnknownType when not annotated
}

// HasType reports whether the parameter declared a type.
func (p ParameterRecord) HasType() bool {
	return p.Type != UnknownType
}

// FunctionRecord describes a function or method declaration.
type FunctionRecord struct {
	Name       string            `json:"name" yaml:"name"`
	Parameters []ParameterRecord `json:"parameters" yaml:"parameters"`
	Line       int               `json:"line" yaml:"line"` // 1-based
}

// ClassRecord describes a class declaration and its directly declared methods.
type ClassRecord struct {
	Name    string           `json:"name" yaml:"name"`
	Methods []FunctionRecord `json:"methods" yaml:"methods"`
	Line    int              `json:"line" yaml:"line"`
}

// ParsedFile is the normalized structure of one source file. It is built once
// per analysis run and not modified afterwards.
type ParsedFile struct {
	Path      string           `json:"file_path" yaml:"file_path"` // canonical absolute path
	Language  Language         `json:"language" yaml:"language"`
	Hash      string           `json:"hash" yaml:"hash"` // xxh3 digest of the file bytes
	Classes   []ClassRecord    `json:"classes" yaml:"classes"`
	Functions []FunctionRecord `json:"functions" yaml:"functions"` // top-level only
	Imports   []string         `json:"imports" yaml:"imports"`     // verbatim statement text
}

// Callables returns the top-level functions followed by every class method.
func (f *ParsedFile) Callables() []FunctionRecord {
	out := make([]FunctionRecord, 0, len(f.Functions))
	out = append(out, f.Functions...)
	for _, c := range f.Classes {
		out = append(out, c.Methods...)
	}
	return out
}

// MethodCount returns the number of methods across all classes.
func (f *ParsedFile) MethodCount() int {
	n := 0
	for _, c := range f.Classes {
		n += len(c.Methods)
	}
	return n
}
