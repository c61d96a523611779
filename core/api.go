// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/core
//
// api.go: Builder (mutable staging area) and NewGraph (one-shot constructor).
//
// Contract:
//   - AddVertex is idempotent; negative ids → ErrNegativeVertex.
//   - AddEdge validates immediately: loop → ErrLoopNotAllowed, unknown
//     endpoint → ErrVertexNotFound, duplicate {u,v} in either orientation
//     → ErrMultiEdgeNotAllowed. A rejected edge leaves the Builder unchanged.
//   - Build returns an immutable snapshot; the Builder stays usable.
//
// Complexity:
//   - AddVertex/AddEdge: O(1) amortized.
//   - Build: O(V log V + E).

package core

import (
	"fmt"
	"sort"
)

// Builder accumulates vertices and edges and validates every insertion.
// It is not safe for concurrent use.
type Builder struct {
	vertices map[int]struct{}
	edges    []Edge
	edgeSet  map[EdgeKey]struct{}
}

// NewBuilder returns an empty Builder with capacity for about n vertices.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}

	return &Builder{
		vertices: make(map[int]struct{}, n),
		edgeSet:  make(map[EdgeKey]struct{}),
	}
}

// AddVertex inserts id. Re-adding an existing id is a no-op.
func (b *Builder) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrNegativeVertex)
	}
	b.vertices[id] = struct{}{}

	return nil
}

// AddVertices inserts ids in order, stopping at the first error.
func (b *Builder) AddVertices(ids ...int) error {
	for _, id := range ids {
		if err := b.AddVertex(id); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge appends the undirected edge {from,to} with orientation from→to.
func (b *Builder) AddEdge(from, to int) error {
	if from == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if _, ok := b.vertices[from]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): from: %w", from, to, ErrVertexNotFound)
	}
	if _, ok := b.vertices[to]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): to: %w", from, to, ErrVertexNotFound)
	}

	e := Edge{From: from, To: to}
	key := e.Key()
	if _, dup := b.edgeSet[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	b.edgeSet[key] = struct{}{}
	b.edges = append(b.edges, e)

	return nil
}

// HasEdge reports whether {u,v} was already added (either orientation).
func (b *Builder) HasEdge(u, v int) bool {
	_, ok := b.edgeSet[Edge{From: u, To: v}.Key()]

	return ok
}

// VertexCount returns the number of staged vertices.
func (b *Builder) VertexCount() int { return len(b.vertices) }

// EdgeCount returns the number of staged edges.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Build freezes the staged content into a Graph.
func (b *Builder) Build() *Graph {
	vertices := make([]int, 0, len(b.vertices))
	for id := range b.vertices {
		vertices = append(vertices, id)
	}
	sort.Ints(vertices)

	g := &Graph{
		vertices: vertices,
		index:    make(map[int]int, len(vertices)),
		edges:    make([]Edge, len(b.edges)),
		adj:      make(map[int][]int, len(vertices)),
		edgeSet:  make(map[EdgeKey]int, len(b.edges)),
	}
	for i, id := range vertices {
		g.index[id] = i
		g.adj[id] = nil
	}
	copy(g.edges, b.edges)
	for i, e := range g.edges {
		g.edgeSet[e.Key()] = i
		g.adj[e.From] = append(g.adj[e.From], e.To)
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}

	return g
}

// NewGraph builds a Graph from explicit vertex and edge lists.
// Duplicate vertices are tolerated; any invalid edge aborts construction.
func NewGraph(vertices []int, edges []Edge) (*Graph, error) {
	b := NewBuilder(len(vertices))
	if err := b.AddVertices(vertices...); err != nil {
		return nil, fmt.Errorf("core: NewGraph: %w", err)
	}
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("core: NewGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// MustGraph is NewGraph that panics on error. Intended for fixtures.
func MustGraph(vertices []int, edges []Edge) *Graph {
	g, err := NewGraph(vertices, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// Range returns the ids 0..n-1 (n ≤ 0 yields an empty slice).
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}
