// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

func TestStyles_UseANSIColorCodes(t *testing.T) {
	for name, style := range map[string]lipgloss.Style{
		"success": successStyle,
		"error":   errorStyle,
		"info":    infoStyle,
		"step":    stepStyle,
	} {
		c, ok := style.GetForeground().(lipgloss.Color)
		require.True(t, ok, name)
		code, err := strconv.Atoi(string(c))
		require.NoError(t, err, "%s color %q is not an ANSI code", name, c)
		assert.True(t, code >= 0 && code <= 255, name)
	}
}

func TestPrinter_SummaryListsFailures(t *testing.T) {
	var buf bytes.Buffer
	printer{w: &buf}.summary(&types.AnalysisReport{
		Summary: types.Summary{
			TotalFiles:  1,
			FailedFiles: 1,
			Languages:   map[types.Language]int{types.Python: 1},
		},
		Failures: []types.FileFailure{{Path: "bad.py", Reason: "syntax error near line 3"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Total files: 1")
	assert.Contains(t, out, "Languages: python=1")
	assert.Contains(t, out, "1 files could not be parsed")
	assert.Contains(t, out, "bad.py: syntax error near line 3")
}
