// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// langSpec holds the tree-sitter grammar for a file type and the node kinds
// each structural sweep looks for.
type langSpec struct {
	grammar  string
	language types.Language
	lang     *sitter.Language

	classKinds   map[string]bool // class-like declarations
	methodKinds  map[string]bool // declarations collected as class members
	funcKinds    map[string]bool // declarations collected by the top-level sweep
	literalKinds map[string]bool // function literals named after their binding
	wrapperKinds map[string]bool // class-body nodes whose children are members
	fieldKinds   map[string]bool // class fields that may hold a function literal
	importKinds  map[string]bool

	// importCall reports whether a call expression is a module load such as
	// require("./x"). Nil when the language has no such form.
	importCall func(n *sitter.Node, src []byte) bool

	params func(fn *sitter.Node, src []byte) []types.ParameterRecord
}

// Registry maps file extensions to grammar specs. Build one with NewRegistry
// and share it; it is read-only after construction.
type Registry struct {
	byExt map[string]*langSpec
}

// NewRegistry returns a registry for Python, JavaScript, TypeScript and Java.
func NewRegistry() *Registry {
	py := &langSpec{
		grammar:      "python",
		language:     types.Python,
		lang:         python.GetLanguage(),
		classKinds:   kindSet("class_definition"),
		methodKinds:  kindSet("function_definition"),
		funcKinds:    kindSet("function_definition"),
		literalKinds: kindSet(),
		wrapperKinds: kindSet("decorated_definition"),
		fieldKinds:   kindSet(),
		importKinds:  kindSet("import_statement", "import_from_statement"),
		params:       pythonParams,
	}

	js := &langSpec{
		grammar:      "javascript",
		language:     types.JavaScript,
		lang:         javascript.GetLanguage(),
		classKinds:   kindSet("class_declaration"),
		methodKinds:  kindSet("method_definition"),
		funcKinds:    kindSet("function_declaration", "generator_function_declaration"),
		literalKinds: kindSet("arrow_function", "function_expression", "function"),
		wrapperKinds: kindSet(),
		fieldKinds:   kindSet("field_definition"),
		importKinds:  kindSet("import_statement", "export_statement"),
		importCall:   isModuleLoad,
		params:       scriptParams,
	}

	ts := *js
	ts.grammar = "typescript"
	ts.lang = typescript.GetLanguage()
	ts.classKinds = kindSet("class_declaration", "abstract_class_declaration")
	ts.fieldKinds = kindSet("field_definition", "public_field_definition")

	tsxSpec := ts
	tsxSpec.grammar = "tsx"
	tsxSpec.lang = tsx.GetLanguage()

	jv := &langSpec{
		grammar:      "java",
		language:     types.Java,
		lang:         java.GetLanguage(),
		classKinds:   kindSet("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
		methodKinds:  kindSet("method_declaration", "constructor_declaration"),
		funcKinds:    kindSet("method_declaration"),
		literalKinds: kindSet(),
		wrapperKinds: kindSet("enum_body_declarations"),
		fieldKinds:   kindSet(),
		importKinds:  kindSet("import_declaration"),
		params:       javaParams,
	}

	return &Registry{byExt: map[string]*langSpec{
		".py":   py,
		".js":   js,
		".jsx":  js,
		".mjs":  js,
		".cjs":  js,
		".ts":   &ts,
		".tsx":  &tsxSpec,
		".java": jv,
	}}
}

// Supports reports whether path has an extension the registry can parse.
func (r *Registry) Supports(path string) bool {
	_, ok := r.spec(path)
	return ok
}

// Extensions returns the supported extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (r *Registry) spec(path string) (*langSpec, bool) {
	s, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return s, ok
}

func kindSet(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// isModuleLoad matches require("x") and import("x") calls with a literal
// string argument.
func isModuleLoad(n *sitter.Node, src []byte) bool {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return false
	}
	if fn.Type() != "import" && !(fn.Type() == "identifier" && fn.Content(src) == "require") {
		return false
	}
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return false
	}
	return args.NamedChild(0).Type() == "string"
}
