// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MuhibNayem/IntelliTest/internal/testutil"
	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

func TestAnalyzeCmd_WritesJSONReport(t *testing.T) {
	dir := testutil.SetupProject(t, map[string]string{
		"app/orders.py":  "from . import pricing\n\ndef process_order(order: dict):\n    pass\n",
		"app/pricing.py": "def calculate_total(items):\n    return 0\n",
	})
	out := filepath.Join(t.TempDir(), "analysis.json")

	stdout, err := execute(t, "analyze", "--project-path", dir, "--output", out, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to")
	assert.Contains(t, stdout, "Total files: 2")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Summary.TotalFiles)
	assert.Equal(t, 2, report.Summary.BusinessLogicFiles)
	assert.Len(t, report.DependencyGraph.Edges, 1)
}

func TestAnalyzeCmd_StdoutYAML(t *testing.T) {
	dir := testutil.SetupProject(t, map[string]string{
		"Main.java": "public class Main { void handleRequest() {} }\n",
	})

	stdout, err := execute(t, "analyze", "--project-path", dir, "--output", "-", "--format", "yaml")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Contains(t, decoded, "summary")
}

func TestAnalyzeCmd_MissingProject(t *testing.T) {
	_, err := execute(t, "analyze", "--project-path", filepath.Join(t.TempDir(), "missing"), "--output", "-")
	assert.Error(t, err)
}

func TestAnalyzeCmd_UnknownFormat(t *testing.T) {
	_, err := execute(t, "analyze", "--project-path", t.TempDir(), "--format", "html")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "intellitest "+version+"\n", stdout)
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}
