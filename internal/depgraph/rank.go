// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package depgraph

import (
	"math"
	"sort"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

const (
	defaultDamping   = 0.85
	defaultMaxIter   = 100
	defaultTolerance = 1e-6
)

// RankConfig configures PageRank computation.
type RankConfig struct {
	Damping       float64 // Damping factor (default 0.85)
	MaxIterations int     // Maximum iterations (default 100)
	Tolerance     float64 // Convergence tolerance (default 1e-6)
}

// RankedFile is a node path with its PageRank score.
type RankedFile struct {
	Path  string
	Score float64
}

// Rank runs PageRank over the graph and returns every file ranked by score,
// highest first. Files that many others import rank highest.
func (g *Graph) Rank(cfg RankConfig) []RankedFile {
	g.mu.RLock()
	ids := g.sortedNodes()
	edges := g.sortedEdges()
	g.mu.RUnlock()

	scores := pageRank(ids, edges, cfg)
	ranked := make([]RankedFile, len(ids))
	for i, id := range ids {
		ranked[i] = RankedFile{Path: id, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// pageRank returns one score per id, in ids order. Iteration order is fixed
// by the sorted inputs so results are reproducible bit for bit.
func pageRank(ids []string, edges []types.DependencyEdge, cfg RankConfig) []float64 {
	damping := cfg.Damping
	if damping == 0 {
		damping = defaultDamping
	}
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}

	n := len(ids)
	if n == 0 {
		return nil
	}
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	outEdges := make([][]int, n)
	for _, e := range edges {
		from, okF := idx[e.Source]
		to, okT := idx[e.Target]
		if !okF || !okT {
			continue
		}
		outEdges[from] = append(outEdges[from], to)
	}

	uniform := 1.0 / float64(n)
	rank := make([]float64, n)
	for i := range rank {
		rank[i] = uniform
	}

	newRank := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		// Rank held by files that import nothing is spread evenly.
		dangling := 0.0
		for i := 0; i < n; i++ {
			if len(outEdges[i]) == 0 {
				dangling += rank[i]
			}
		}
		base := (1.0-damping)*uniform + damping*dangling*uniform
		for i := range newRank {
			newRank[i] = base
		}

		for i := 0; i < n; i++ {
			if len(outEdges[i]) == 0 {
				continue
			}
			share := damping * rank[i] / float64(len(outEdges[i]))
			for _, to := range outEdges[i] {
				newRank[to] += share
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		copy(rank, newRank)
		if diff < tolerance {
			break
		}
	}
	return rank
}
