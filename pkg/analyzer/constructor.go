// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"fmt"
	"runtime"

	internalanalyzer "github.com/MuhibNayem/IntelliTest/internal/analyzer"
	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// New validates the config and returns a ready-to-use Analyzer. It does not
// touch the project tree; that happens in Analyze.
func New(cfg Config) (Analyzer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	runner := internalanalyzer.NewRunner(internalanalyzer.Deps{
		Root:        cfg.ProjectPath,
		Concurrency: cfg.Concurrency,
		IgnoreDirs:  cfg.IgnoreDirs,
		Gitignore:   cfg.RespectGitignore,
		KeepPartial: cfg.KeepPartial,
		Logger:      cfg.Logger,
		Observer:    cfg.OnPhase,
	})

	return &analyzerAdapter{runner: runner}, nil
}

// analyzerAdapter adapts internal/analyzer.Runner to the public Analyzer interface.
type analyzerAdapter struct {
	runner *internalanalyzer.Runner
}

func (a *analyzerAdapter) Analyze(ctx context.Context) (*types.AnalysisReport, error) {
	return a.runner.Analyze(ctx)
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.ProjectPath == "" {
		return fmt.Errorf("ProjectPath is required")
	}
	if cfg.Concurrency < 0 {
		return fmt.Errorf("Concurrency must not be negative, got %d", cfg.Concurrency)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Concurrency == 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
}
