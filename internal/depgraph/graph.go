// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package depgraph holds the directed file dependency graph built during an
// analysis run. Nodes are parsed files keyed by path; an edge A -> B means
// A imports B.
package depgraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

// ErrUnknownNode is returned by AddEdge when an endpoint was never added.
var ErrUnknownNode = errors.New("unknown graph node")

type edge struct {
	from, to string
}

// Graph is a directed graph of files. It is safe for concurrent use.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*types.ParsedFile
	edges map[edge]struct{}
	out   map[string]int
	in    map[string]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*types.ParsedFile),
		edges: make(map[edge]struct{}),
		out:   make(map[string]int),
		in:    make(map[string]int),
	}
}

// AddNode inserts or replaces the node for pf.Path. Existing edges are kept.
func (g *Graph) AddNode(pf *types.ParsedFile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[pf.Path] = pf
}

// AddEdge records that from imports to. Adding an edge twice is a no-op and
// self-imports are ignored. Both endpoints must already be nodes.
func (g *Graph) AddEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("edge source %s: %w", from, ErrUnknownNode)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("edge target %s: %w", to, ErrUnknownNode)
	}
	if from == to {
		return nil
	}
	e := edge{from: from, to: to}
	if _, dup := g.edges[e]; dup {
		return nil
	}
	g.edges[e] = struct{}{}
	g.out[from]++
	g.in[to]++
	return nil
}

// Node returns the parsed file stored for path.
func (g *Graph) Node(path string) (*types.ParsedFile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pf, ok := g.nodes[path]
	return pf, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Nodes returns the node paths in sorted order.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sortedNodes()
}

// Edges returns every edge sorted by source, then target.
func (g *Graph) Edges() []types.DependencyEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sortedEdges()
}

// Serialize returns the deterministic form of the graph: nodes sorted by
// path with their rank and degrees, edges sorted by source then target.
func (g *Graph) Serialize() types.GraphData {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedNodes()
	edges := g.sortedEdges()
	ranks := pageRank(ids, edges, RankConfig{})

	nodes := make([]types.GraphNode, 0, len(ids))
	for i, id := range ids {
		nodes = append(nodes, types.GraphNode{
			ID:         id,
			Language:   g.nodes[id].Language,
			Rank:       ranks[i],
			Imports:    g.out[id],
			ImportedBy: g.in[id],
		})
	}
	return types.GraphData{Nodes: nodes, Edges: edges}
}

func (g *Graph) sortedNodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (g *Graph) sortedEdges() []types.DependencyEdge {
	edges := make([]types.DependencyEdge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, types.DependencyEdge{Source: e.from, Target: e.to})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}
