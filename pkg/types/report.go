// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// DependencyEdge is a directed "imports" relationship between two parsed files.
type DependencyEdge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// GraphNode is the serialized form of a file in the dependency graph.
type GraphNode struct {
	ID         string   `json:"id" yaml:"id"`
	Language   Language `json:"language" yaml:"language"`
	Rank       float64  `json:"rank" yaml:"rank"`               // PageRank centrality
	Imports    int      `json:"imports" yaml:"imports"`         // out-degree
	ImportedBy int      `json:"imported_by" yaml:"imported_by"` // in-degree
}

// GraphData is the deterministic serialization of a dependency graph. Nodes
// are sorted by ID and edges by source, then target.
type GraphData struct {
	Nodes []GraphNode      `json:"nodes" yaml:"nodes"`
	Edges []DependencyEdge `json:"edges" yaml:"edges"`
}

// Business-logic entry kinds.
const (
	EntryClass     = "class"
	EntryFunctions = "functions"
)

// BusinessLogicEntry records the business-logic callables of a class or of a
// file's free functions.
type BusinessLogicEntry struct {
	Kind      string           `json:"kind" yaml:"kind"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	Methods   []FunctionRecord `json:"methods,omitempty" yaml:"methods,omitempty"`
	Functions []FunctionRecord `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// Summary aggregates counts over an analysis run.
type Summary struct {
	TotalFiles         int              `json:"total_files" yaml:"total_files"`
	TotalClasses       int              `json:"total_classes" yaml:"total_classes"`
	TotalFunctions     int              `json:"total_functions" yaml:"total_functions"`
	TotalMethods       int              `json:"total_methods" yaml:"total_methods"`
	TotalImports       int              `json:"total_imports" yaml:"total_imports"`
	ResolvedImports    int              `json:"resolved_imports" yaml:"resolved_imports"`
	Languages          map[Language]int `json:"languages" yaml:"languages"`
	BusinessLogicFiles int              `json:"business_logic_files" yaml:"business_logic_files"`
	FailedFiles        int              `json:"failed_files" yaml:"failed_files"`
}

// FileFailure names a file that was excluded from the report and why.
type FileFailure struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// AnalysisReport is the result of one analysis run.
type AnalysisReport struct {
	ProjectPath     string                          `json:"project_path" yaml:"project_path"`
	Revision        string                          `json:"revision,omitempty" yaml:"revision,omitempty"` // HEAD commit when inside a git work tree
	Files           map[string]*ParsedFile          `json:"files" yaml:"files"`
	DependencyGraph GraphData                       `json:"dependency_graph" yaml:"dependency_graph"`
	BusinessLogic   map[string][]BusinessLogicEntry `json:"business_logic" yaml:"business_logic"`
	Summary         Summary                         `json:"summary" yaml:"summary"`
	Failures        []FileFailure                   `json:"failures,omitempty" yaml:"failures,omitempty"`
}
