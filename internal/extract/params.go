// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// pythonParams reads a function_definition's parameters node. Plain
// identifiers carry no type; typed parameters take the text of their type.
func pythonParams(fn *sitter.Node, src []byte) []types.ParameterRecord {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []types.ParameterRecord
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		switch p.Type() {
		case "identifier", "list_splat_pattern", "dictionary_splat_pattern":
			params = append(params, types.ParameterRecord{Name: p.Content(src)})
		case "typed_parameter":
			name := ""
			if first := p.NamedChild(0); first != nil {
				name = first.Content(src)
			}
			params = append(params, types.ParameterRecord{Name: name, Type: fieldText(p, "type", src)})
		case "default_parameter", "typed_default_parameter":
			params = append(params, types.ParameterRecord{
				Name: fieldText(p, "name", src),
				Type: fieldText(p, "type", src),
			})
		}
	}
	return params
}

// scriptParams handles JavaScript and TypeScript formal parameters, including
// the single unparenthesized parameter of an arrow function.
func scriptParams(fn *sitter.Node, src []byte) []types.ParameterRecord {
	if single := fn.ChildByFieldName("parameter"); single != nil {
		return []types.ParameterRecord{{Name: single.Content(src)}}
	}
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []types.ParameterRecord
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		switch p.Type() {
		case "identifier", "rest_pattern", "object_pattern", "array_pattern":
			params = append(params, types.ParameterRecord{Name: p.Content(src)})
		case "assignment_pattern":
			params = append(params, types.ParameterRecord{Name: fieldText(p, "left", src)})
		case "required_parameter", "optional_parameter":
			params = append(params, types.ParameterRecord{
				Name: fieldText(p, "pattern", src),
				Type: annotationText(p.ChildByFieldName("type"), src),
			})
		}
	}
	return params
}

// annotationText strips the leading colon of a TypeScript type_annotation.
func annotationText(n *sitter.Node, src []byte) string {
	if n == nil {
		return types.UnknownType
	}
	return strings.TrimSpace(strings.TrimPrefix(n.Content(src), ":"))
}

// javaParams reads formal_parameter and spread_parameter nodes.
func javaParams(fn *sitter.Node, src []byte) []types.ParameterRecord {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []types.ParameterRecord
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		switch p.Type() {
		case "formal_parameter":
			params = append(params, types.ParameterRecord{
				Name: fieldText(p, "name", src),
				Type: fieldText(p, "type", src),
			})
		case "spread_parameter":
			params = append(params, spreadParam(p, src))
		}
	}
	return params
}

// spreadParam reads `Type... name`. The grammar exposes no fields here, so
// the type is the first type-like child and the name comes from the
// variable_declarator.
func spreadParam(p *sitter.Node, src []byte) types.ParameterRecord {
	var rec types.ParameterRecord
	for i := 0; i < int(p.NamedChildCount()); i++ {
		c := p.NamedChild(i)
		switch {
		case c.Type() == "variable_declarator":
			rec.Name = fieldText(c, "name", src)
		case c.Type() == "identifier" && rec.Name == "":
			rec.Name = c.Content(src)
		case rec.Type == "" && c.Type() != "modifiers":
			rec.Type = c.Content(src) + "..."
		}
	}
	return rec
}
