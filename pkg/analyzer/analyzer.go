// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer defines the public interface for IntelliTest's project
// structure analysis: it turns a source tree into an AnalysisReport of parsed
// files, their import graph and the callables worth testing.
package analyzer

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	internalanalyzer "github.com/MuhibNayem/IntelliTest/internal/analyzer"
	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// Error types for the Analyzer API.
var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrProjectNotFound = internalanalyzer.ErrProjectNotFound
)

// Phase is a stage of an analysis run.
type Phase = internalanalyzer.Phase

// Phases in the order a run passes through them.
const (
	PhaseIdle        = internalanalyzer.Idle
	PhaseWalking     = internalanalyzer.Walking
	PhaseParsing     = internalanalyzer.Parsing
	PhaseResolving   = internalanalyzer.Resolving
	PhaseClassifying = internalanalyzer.Classifying
	PhaseSummarizing = internalanalyzer.Summarizing
	PhaseDone        = internalanalyzer.Done
)

// Config configures an Analyzer instance.
type Config struct {
	ProjectPath      string             // Project root (required)
	Concurrency      int                // Parallel parsers (default runtime.NumCPU())
	IgnoreDirs       []string           // Extra directory names to skip
	RespectGitignore bool               // Skip files matched by .gitignore
	KeepPartial      bool               // Keep files with syntax errors
	Logger           logrus.FieldLogger // Defaults to the logrus standard logger
	OnPhase          func(Phase)        // Called when a run enters a phase
}

// Analyzer analyzes a project tree.
type Analyzer interface {
	// Analyze walks the project, parses every supported file, resolves
	// imports into a dependency graph, classifies business logic and
	// returns the report. Files that fail to parse are logged and left out.
	Analyze(ctx context.Context) (*types.AnalysisReport, error)
}
