// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract turns source files into normalized ParsedFile records using
// tree-sitter grammars for Python, JavaScript/TypeScript and Java.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/zeebo/xxh3"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

var (
	// ErrFileNotFound is returned when the source file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnsupportedLanguage is returned for extensions with no registered grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrParseFailure is wrapped by *ParseError.
	ErrParseFailure = errors.New("parse failure")
)

// ParseError reports a file whose syntax tree contains errors. Partial holds
// the record extracted from the best-effort tree.
type ParseError struct {
	Path    string
	Reason  string
	Partial *types.ParsedFile
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParseFailure }

// Extractor parses source files into ParsedFile records. It is safe for
// concurrent use; every call creates its own tree-sitter parser.
type Extractor struct {
	registry *Registry
}

// NewExtractor returns an extractor backed by reg. A nil registry selects
// NewRegistry().
func NewExtractor(reg *Registry) *Extractor {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Extractor{registry: reg}
}

// Registry returns the grammar registry used by the extractor.
func (e *Extractor) Registry() *Registry {
	return e.registry
}

// ExtractFile reads path and extracts its structure.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*types.ParsedFile, error) {
	if !e.registry.Supports(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	return e.Extract(ctx, path, src)
}

// Extract parses src, which was read from path, and runs the class, function
// and import sweeps over the tree. When the tree contains syntax errors the
// best-effort record is returned together with a *ParseError.
func (e *Extractor) Extract(ctx context.Context, path string, src []byte) (*types.ParsedFile, error) {
	spec, ok := e.registry.spec(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(spec.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s with %s grammar: %w", path, spec.grammar, err)
	}
	defer tree.Close()
	root := tree.RootNode()

	pf := &types.ParsedFile{
		Path:      path,
		Language:  spec.language,
		Hash:      fmt.Sprintf("%016x", xxh3.Hash(src)),
		Classes:   sweepClasses(spec, root, src),
		Functions: sweepFunctions(spec, root, src),
		Imports:   sweepImports(spec, root, src),
	}

	switch {
	case !utf8.Valid(src):
		return pf, &ParseError{Path: path, Reason: "content is not valid UTF-8", Partial: pf}
	case root.HasError():
		return pf, &ParseError{Path: path, Reason: fmt.Sprintf("syntax error near line %d", firstErrorLine(root)), Partial: pf}
	}
	return pf, nil
}

// firstErrorLine returns the 1-based line of the first ERROR or MISSING node.
func firstErrorLine(root *sitter.Node) int {
	bad := walk(root, func(n *sitter.Node) bool {
		return n.Type() == "ERROR" || n.IsMissing()
	})
	if len(bad) == 0 {
		return line(root)
	}
	return line(bad[0])
}
