// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

const anonymousName = "anonymous"

// span is the byte range covered by a syntax node.
type span struct {
	start, end uint32
}

func spanOf(n *sitter.Node) span {
	return span{start: n.StartByte(), end: n.EndByte()}
}

func (s span) contains(n *sitter.Node) bool {
	return n.StartByte() >= s.start && n.EndByte() <= s.end
}

// sweepClasses returns one ClassRecord per class-like node in the tree, in
// document order. Methods are the function declarations directly inside the
// class body.
func sweepClasses(spec *langSpec, root *sitter.Node, src []byte) []types.ClassRecord {
	classes := make([]types.ClassRecord, 0)
	for _, n := range collect(root, func(n *sitter.Node) bool { return spec.classKinds[n.Type()] }) {
		classes = append(classes, types.ClassRecord{
			Name:    fieldText(n, "name", src),
			Methods: classMethods(spec, n, src),
			Line:    line(n),
		})
	}
	return classes
}

// classMethods extracts the members of a class body one level down.
func classMethods(spec *langSpec, class *sitter.Node, src []byte) []types.FunctionRecord {
	methods := make([]types.FunctionRecord, 0)
	body := class.ChildByFieldName("body")
	if body == nil {
		return methods
	}
	return appendMembers(spec, methods, body, src)
}

func appendMembers(spec *langSpec, methods []types.FunctionRecord, body *sitter.Node, src []byte) []types.FunctionRecord {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		kind := child.Type()
		switch {
		case spec.methodKinds[kind]:
			methods = append(methods, functionRecord(spec, child, fieldText(child, "name", src), src))
		case spec.wrapperKinds[kind]:
			if def := child.ChildByFieldName("definition"); def != nil && spec.methodKinds[def.Type()] {
				methods = append(methods, functionRecord(spec, def, fieldText(def, "name", src), src))
				continue
			}
			methods = appendMembers(spec, methods, child, src)
		case spec.fieldKinds[kind]:
			value := child.ChildByFieldName("value")
			if value == nil || !spec.literalKinds[value.Type()] {
				continue
			}
			name := fieldText(child, "name", src)
			if name == "" {
				name = fieldText(child, "property", src)
			}
			methods = append(methods, functionRecord(spec, value, name, src))
		}
	}
	return methods
}

// sweepFunctions returns the functions declared outside every class. Class
// spans are collected first; a function whose span lies inside any of them
// belongs to the class sweep.
func sweepFunctions(spec *langSpec, root *sitter.Node, src []byte) []types.FunctionRecord {
	var classSpans []span
	for _, c := range collect(root, func(n *sitter.Node) bool { return spec.classKinds[n.Type()] }) {
		classSpans = append(classSpans, spanOf(c))
	}

	functions := make([]types.FunctionRecord, 0)
	candidates := collect(root, func(n *sitter.Node) bool {
		return spec.funcKinds[n.Type()] || spec.literalKinds[n.Type()]
	})
	for _, fn := range candidates {
		if insideAny(classSpans, fn) {
			continue
		}
		name := fieldText(fn, "name", src)
		if spec.literalKinds[fn.Type()] && name == "" {
			name = bindingName(fn, src)
		}
		functions = append(functions, functionRecord(spec, fn, name, src))
	}
	return functions
}

func insideAny(spans []span, n *sitter.Node) bool {
	for _, s := range spans {
		if s.contains(n) {
			return true
		}
	}
	return false
}

// bindingName returns the variable a function literal is assigned to, or
// "anonymous".
func bindingName(fn *sitter.Node, src []byte) string {
	parent := fn.Parent()
	if parent != nil && parent.Type() == "variable_declarator" {
		if name := fieldText(parent, "name", src); name != "" {
			return name
		}
	}
	return anonymousName
}

// sweepImports returns the verbatim text of every import statement.
func sweepImports(spec *langSpec, root *sitter.Node, src []byte) []string {
	imports := make([]string, 0)
	for _, n := range collect(root, func(n *sitter.Node) bool {
		switch {
		case n.Type() == "export_statement":
			return spec.importKinds[n.Type()] && n.ChildByFieldName("source") != nil
		case spec.importKinds[n.Type()]:
			return true
		case n.Type() == "call_expression" && spec.importCall != nil:
			return spec.importCall(n, src)
		}
		return false
	}) {
		imports = append(imports, n.Content(src))
	}
	return imports
}

func functionRecord(spec *langSpec, fn *sitter.Node, name string, src []byte) types.FunctionRecord {
	if name == "" {
		name = anonymousName
	}
	params := spec.params(fn, src)
	if params == nil {
		params = make([]types.ParameterRecord, 0)
	}
	return types.FunctionRecord{Name: name, Parameters: params, Line: line(fn)}
}

// collect returns every named node under root (root included) that matches,
// in document order. Anonymous tokens such as the "function" keyword share
// their type string with real node kinds and are never matched.
func collect(root *sitter.Node, match func(*sitter.Node) bool) []*sitter.Node {
	return walk(root, func(n *sitter.Node) bool { return n.IsNamed() && match(n) })
}

// walk returns every node under root, anonymous tokens included, that
// matches, in document order.
func walk(root *sitter.Node, match func(*sitter.Node) bool) []*sitter.Node {
	var out []*sitter.Node
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if match(n) {
			out = append(out, n)
		}
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if c := n.Child(i); c != nil {
				stack = append(stack, c)
			}
		}
	}
	return out
}

func fieldText(n *sitter.Node, field string, src []byte) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}
	return c.Content(src)
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}
