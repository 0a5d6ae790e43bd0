// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

func TestWrite_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), JSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"project_path", "files", "dependency_graph", "business_logic", "summary"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "failures", "empty failures are omitted")

	summary := decoded["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["total_files"])
	assert.Contains(t, summary, "business_logic_files")

	file := decoded["files"].(map[string]any)["/proj/shop/orders.py"].(map[string]any)
	assert.Equal(t, "/proj/shop/orders.py", file["file_path"])
	fn := file["functions"].([]any)[0].(map[string]any)
	param := fn["parameters"].([]any)[0].(map[string]any)
	assert.Equal(t, "order_id", param["name"])
	assert.Equal(t, "int", param["type"])
}

func TestWrite_JSONDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, sampleReport(), JSON))
	require.NoError(t, Write(&b, sampleReport(), JSON))
	assert.Equal(t, a.String(), b.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), YAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/proj", decoded["project_path"])
	assert.Contains(t, buf.String(), "dependency_graph:")
	assert.Contains(t, buf.String(), "imported_by:")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sampleReport(), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", JSON},
		{"JSON", JSON},
		{"yml", YAML},
		{"yaml", YAML},
		{"text", Text},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("html")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, JSON, FormatForPath("analysis.json"))
	assert.Equal(t, YAML, FormatForPath("out/analysis.YML"))
	assert.Equal(t, Text, FormatForPath("map.txt"))
	assert.Equal(t, JSON, FormatForPath("analysis"))
}

func TestRenderText_RankOrderAndContent(t *testing.T) {
	text := RenderText(sampleReport(), TextConfig{})

	assert.Contains(t, text, "Project map of /proj (2/2 files)")
	assert.Contains(t, text, "revision abc123")
	assert.Contains(t, text, "  class OrderService:3")
	assert.Contains(t, text, "    create_order(self, customer: str):4")
	assert.Contains(t, text, "  process_refund(order_id: int):10")

	// pricing.py is imported by orders.py, so it ranks first.
	assert.Less(t, strings.Index(text, "shop/pricing.py"), strings.Index(text, "shop/orders.py"))
}

func TestRenderText_BudgetDropsWholeFiles(t *testing.T) {
	text := RenderText(sampleReport(), TextConfig{MaxLines: 2})

	assert.Contains(t, text, "(1/2 files)")
	assert.Contains(t, text, "shop/pricing.py")
	assert.NotContains(t, text, "shop/orders.py (")
}

func TestRenderText_LongLinesTruncated(t *testing.T) {
	r := sampleReport()
	long := strings.Repeat("x", 150)
	r.Files["/proj/shop/pricing.py"].Functions[0].Name = long

	for _, line := range strings.Split(RenderText(r, TextConfig{}), "\n") {
		if strings.Contains(line, "xxx") {
			assert.LessOrEqual(t, len(line), maxLineLength)
			assert.True(t, strings.HasSuffix(line, "..."))
		}
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "é" is two bytes; at odd offsets the byte cap lands inside one.
	for _, prefix := range []string{"", "a"} {
		line := prefix + strings.Repeat("é", 80)
		got := truncate(line)
		assert.True(t, utf8.ValidString(got), "prefix %q", prefix)
		assert.LessOrEqual(t, len(got), maxLineLength)
		assert.True(t, strings.HasSuffix(got, "..."))
	}
	assert.Equal(t, "short", truncate("short"))
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "analysis.json")

	require.NoError(t, WriteFile(path, sampleReport(), JSON))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	require.NoError(t, os.Chmod(path, 0o600))
	require.NoError(t, WriteFile(path, sampleReport(), YAML))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFile_FailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")

	err := WriteFile(path, sampleReport(), Format("xml"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// --- Test helpers ---

func sampleReport() *types.AnalysisReport {
	orders := &types.ParsedFile{
		Path:     "/proj/shop/orders.py",
		Language: types.Python,
		Hash:     "00000000deadbeef",
		Classes: []types.ClassRecord{{
			Name: "OrderService",
			Line: 3,
			Methods: []types.FunctionRecord{{
				Name:       "create_order",
				Line:       4,
				Parameters: []types.ParameterRecord{{Name: "self"}, {Name: "customer", Type: "str"}},
			}},
		}},
		Functions: []types.FunctionRecord{{
			Name:       "process_refund",
			Line:       10,
			Parameters: []types.ParameterRecord{{Name: "order_id", Type: "int"}},
		}},
		Imports: []string{"from . import pricing"},
	}
	pricing := &types.ParsedFile{
		Path:      "/proj/shop/pricing.py",
		Language:  types.Python,
		Hash:      "00000000cafebabe",
		Classes:   []types.ClassRecord{},
		Functions: []types.FunctionRecord{{Name: "calculate_total", Line: 1, Parameters: []types.ParameterRecord{{Name: "items"}}}},
		Imports:   []string{},
	}

	return &types.AnalysisReport{
		ProjectPath: "/proj",
		Revision:    "abc123",
		Files: map[string]*types.ParsedFile{
			orders.Path:  orders,
			pricing.Path: pricing,
		},
		DependencyGraph: types.GraphData{
			Nodes: []types.GraphNode{
				{ID: orders.Path, Language: types.Python, Rank: 0.35, Imports: 1},
				{ID: pricing.Path, Language: types.Python, Rank: 0.65, ImportedBy: 1},
			},
			Edges: []types.DependencyEdge{{Source: orders.Path, Target: pricing.Path}},
		},
		BusinessLogic: map[string][]types.BusinessLogicEntry{
			orders.Path: {
				{Kind: types.EntryClass, Name: "OrderService", Methods: orders.Classes[0].Methods},
				{Kind: types.EntryFunctions, Functions: orders.Functions},
			},
			pricing.Path: {{Kind: types.EntryFunctions, Functions: pricing.Functions}},
		},
		Summary: types.Summary{
			TotalFiles:         2,
			TotalClasses:       1,
			TotalFunctions:     2,
			TotalMethods:       1,
			TotalImports:       1,
			ResolvedImports:    1,
			Languages:          map[types.Language]int{types.Python: 2},
			BusinessLogicFiles: 2,
		},
	}
}
