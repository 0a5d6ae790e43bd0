// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer implements the analysis orchestrator: it walks a project,
// extracts every supported file, resolves imports into a dependency graph,
// classifies business logic and summarizes the result.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/MuhibNayem/IntelliTest/internal/classify"
	"github.com/MuhibNayem/IntelliTest/internal/depgraph"
	"github.com/MuhibNayem/IntelliTest/internal/extract"
	gitpkg "github.com/MuhibNayem/IntelliTest/internal/git"
	"github.com/MuhibNayem/IntelliTest/internal/resolve"
	"github.com/MuhibNayem/IntelliTest/internal/scan"
	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// ErrProjectNotFound is returned when the project root does not exist or is
// not a directory.
var ErrProjectNotFound = errors.New("project not found")

var tracer = otel.Tracer("github.com/MuhibNayem/IntelliTest/internal/analyzer")

// Deps holds the settings and collaborators of a Runner.
type Deps struct {
	Root        string             // Project root (required)
	Concurrency int                // Parallel parsers; <= 0 means runtime.NumCPU()
	IgnoreDirs  []string           // Directory names skipped in addition to the defaults
	Gitignore   bool               // Honour .gitignore files under Root
	KeepPartial bool               // Keep best-effort records of files with syntax errors
	Registry    *extract.Registry  // Grammar table; nil means extract.NewRegistry()
	Logger      logrus.FieldLogger // nil means the standard logger
	Observer    Observer           // Optional phase callback
}

// Runner runs analyses of one project. A Runner may be reused; every call to
// Analyze rebuilds all state from scratch.
type Runner struct {
	deps      Deps
	extractor *extract.Extractor
	log       logrus.FieldLogger
	phase     atomic.Int32
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		deps:      deps,
		extractor: extract.NewExtractor(deps.Registry),
		log:       log,
	}
}

// Phase returns the phase of the current or most recent run.
func (r *Runner) Phase() Phase {
	return Phase(r.phase.Load())
}

// parsed is the outcome of extracting a single file.
type parsed struct {
	file *types.ParsedFile
	err  error
}

// Analyze runs a full analysis and returns the report. Per-file failures are
// logged and the file is left out; only a missing project root or context
// cancellation fail the run.
func (r *Runner) Analyze(ctx context.Context) (*types.AnalysisReport, error) {
	r.enter(Idle)

	root, err := r.projectRoot()
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "Runner.Analyze", trace.WithAttributes(attribute.String("project", root)))
	defer span.End()

	log := r.log.WithField("project", root)
	log.Info("analyzing project")

	// Walking.
	r.enter(Walking)
	paths, err := r.walk(ctx, root)
	if err != nil {
		return nil, err
	}
	log.WithField("files", len(paths)).Debug("walk complete")

	// Parsing.
	r.enter(Parsing)
	files, failures, err := r.parseAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	// Resolving.
	r.enter(Resolving)
	graph, resolved, err := r.resolveAll(ctx, root, files)
	if err != nil {
		return nil, err
	}

	// Classifying.
	r.enter(Classifying)
	business := make(map[string][]types.BusinessLogicEntry)
	for _, pf := range files {
		if entries := classify.Entries(pf); len(entries) > 0 {
			business[pf.Path] = entries
		}
	}

	// Summarizing.
	r.enter(Summarizing)
	report := &types.AnalysisReport{
		ProjectPath:     root,
		Revision:        gitpkg.Revision(root),
		Files:           make(map[string]*types.ParsedFile, len(files)),
		DependencyGraph: graph.Serialize(),
		BusinessLogic:   business,
		Failures:        failures,
	}
	for _, pf := range files {
		report.Files[pf.Path] = pf
	}
	report.Summary = summarize(files, business, resolved, len(failures))

	span.SetAttributes(
		attribute.Int("files", report.Summary.TotalFiles),
		attribute.Int("failed_files", report.Summary.FailedFiles),
		attribute.Int("edges", len(report.DependencyGraph.Edges)),
	)
	log.WithFields(logrus.Fields{
		"files":    report.Summary.TotalFiles,
		"failed":   report.Summary.FailedFiles,
		"edges":    len(report.DependencyGraph.Edges),
		"business": report.Summary.BusinessLogicFiles,
	}).Info("analysis complete")

	r.enter(Done)
	return report, nil
}

func (r *Runner) enter(p Phase) {
	r.phase.Store(int32(p))
	r.log.WithField("phase", p.String()).Debug("entering phase")
	if r.deps.Observer != nil {
		r.deps.Observer(p)
	}
}

func (r *Runner) projectRoot() (string, error) {
	if r.deps.Root == "" {
		return "", fmt.Errorf("%w: empty path", ErrProjectNotFound)
	}
	root, err := filepath.Abs(r.deps.Root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProjectNotFound, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProjectNotFound, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrProjectNotFound, root)
	}
	return root, nil
}

func (r *Runner) walk(ctx context.Context, root string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Runner.walk")
	defer span.End()

	paths, err := scan.Walk(ctx, root, scan.Options{
		IgnoreDirs: r.deps.IgnoreDirs,
		Gitignore:  r.deps.Gitignore,
		Include:    r.extractor.Registry().Supports,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("files", len(paths)))
	return paths, nil
}

// parseAll extracts every path on a bounded worker pool. Results are kept in
// path order so the outcome does not depend on scheduling.
func (r *Runner) parseAll(ctx context.Context, paths []string) ([]*types.ParsedFile, []types.FileFailure, error) {
	ctx, span := tracer.Start(ctx, "Runner.parseAll", trace.WithAttributes(attribute.Int("files", len(paths))))
	defer span.End()

	results := make([]parsed, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers(len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pf, err := r.extractor.ExtractFile(gctx, path)
			results[i] = parsed{file: pf, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	files := make([]*types.ParsedFile, 0, len(paths))
	var failures []types.FileFailure
	for i, res := range results {
		if res.err == nil {
			files = append(files, res.file)
			continue
		}

		var perr *extract.ParseError
		if r.deps.KeepPartial && errors.As(res.err, &perr) && perr.Partial != nil {
			r.log.WithField("file", paths[i]).WithError(res.err).Warn("keeping partial parse")
			files = append(files, perr.Partial)
			continue
		}
		r.log.WithField("file", paths[i]).WithError(res.err).Warn("skipping file")
		failures = append(failures, types.FileFailure{Path: paths[i], Reason: res.err.Error()})
	}
	span.SetAttributes(attribute.Int("parsed", len(files)), attribute.Int("failed", len(failures)))
	return files, failures, nil
}

// resolveAll adds every file to a new graph, then resolves imports in
// parallel. It returns the graph and the number of resolved import statements.
func (r *Runner) resolveAll(ctx context.Context, root string, files []*types.ParsedFile) (*depgraph.Graph, int, error) {
	ctx, span := tracer.Start(ctx, "Runner.resolveAll")
	defer span.End()

	graph := depgraph.New()
	for _, pf := range files {
		graph.AddNode(pf)
	}
	resolver := resolve.New(root, files)

	counts := make([]int, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers(len(files)))
	for i, pf := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, raw := range pf.Imports {
				target, ok := resolver.Resolve(pf.Path, raw)
				if !ok {
					continue
				}
				if err := graph.AddEdge(pf.Path, target); err != nil {
					r.log.WithField("file", pf.Path).WithError(err).Debug("dropping edge")
					continue
				}
				counts[i]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	resolved := 0
	for _, c := range counts {
		resolved += c
	}
	span.SetAttributes(attribute.Int("resolved_imports", resolved))
	return graph, resolved, nil
}

func (r *Runner) workers(jobs int) int {
	n := r.deps.Concurrency
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if jobs > 0 && n > jobs {
		n = jobs
	}
	return n
}

func summarize(files []*types.ParsedFile, business map[string][]types.BusinessLogicEntry, resolved, failed int) types.Summary {
	s := types.Summary{
		TotalFiles:         len(files),
		ResolvedImports:    resolved,
		Languages:          make(map[types.Language]int),
		BusinessLogicFiles: len(business),
		FailedFiles:        failed,
	}
	for _, pf := range files {
		s.TotalClasses += len(pf.Classes)
		s.TotalFunctions += len(pf.Functions)
		s.TotalMethods += pf.MethodCount()
		s.TotalImports += len(pf.Imports)
		s.Languages[pf.Language]++
	}
	return s
}
