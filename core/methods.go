// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/core
//
// methods.go: read-only queries on Graph.
//
// All slices returned are fresh copies; callers may mutate them.

package core

import (
	"fmt"
)

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns all edges in emission order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether id ∈ V.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether {u,v} ∈ E, in either orientation.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edgeSet[Edge{From: u, To: v}.Key()]

	return ok
}

// IndexOf returns the position of id within Vertices(), used by dense
// matrix algorithms to map ids onto 0..|V|-1.
func (g *Graph) IndexOf(id int) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Neighbors returns the neighbors of id in edge emission order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// MaxEdges returns n(n-1)/2 for the current vertex count.
func (g *Graph) MaxEdges() int {
	n := len(g.vertices)

	return n * (n - 1) / 2
}

// IsComplete reports whether every vertex pair is adjacent.
func (g *Graph) IsComplete() bool {
	return len(g.edges) == g.MaxEdges()
}

// SameVertexSet reports whether g and other have identical vertex sets.
func (g *Graph) SameVertexSet(other *Graph) bool {
	if len(g.vertices) != len(other.vertices) {
		return false
	}
	for i, id := range g.vertices {
		if other.vertices[i] != id {
			return false
		}
	}

	return true
}

// SameEdgeSet reports whether g and other contain the same undirected edges,
// regardless of emission order or orientation.
func (g *Graph) SameEdgeSet(other *Graph) bool {
	if len(g.edges) != len(other.edges) {
		return false
	}
	for key := range g.edgeSet {
		if _, ok := other.edgeSet[key]; !ok {
			return false
		}
	}

	return true
}

// SameEdgeOrder reports whether g and other emit the same undirected edges
// in the same order. Orientation within an edge is ignored.
func (g *Graph) SameEdgeOrder(other *Graph) bool {
	if len(g.edges) != len(other.edges) {
		return false
	}
	for i, e := range g.edges {
		if e.Key() != other.edges[i].Key() {
			return false
		}
	}

	return true
}

// String renders a short human summary, e.g. "Graph(|V|=4, |E|=3)".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(|V|=%d, |E|=%d)", len(g.vertices), len(g.edges))
}
