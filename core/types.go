// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/core
//
// types.go: sentinel errors, Edge, EdgeKey, Graph and Partition.
//
// Errors:
//
//	ErrNegativeVertex      - vertex id is < 0.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop attempted.
//	ErrMultiEdgeNotAllowed - {u,v} already present (either orientation).
//	ErrBadPartition        - partition is not a disjoint cover of V.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("core: negative vertex id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadPartition indicates a partition that is not a disjoint cover of the vertex set.
	ErrBadPartition = errors.New("core: invalid bipartition")
)

// Edge is one undirected edge as it was emitted.
// From/To keep the emission orientation; {From,To} and {To,From} denote the
// same undirected edge.
type Edge struct {
	From int
	To   int
}

// Key returns the orientation-free identity of e.
func (e Edge) Key() EdgeKey {
	if e.From <= e.To {
		return EdgeKey{U: e.From, V: e.To}
	}

	return EdgeKey{U: e.To, V: e.From}
}

// Other returns the endpoint of e opposite to v (v must be an endpoint).
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// String renders the edge as "(from,to)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.From, e.To)
}

// EdgeKey is the normalized (U ≤ V) identity of an undirected edge.
type EdgeKey struct {
	U int
	V int
}

// String renders the key as "(u,v)".
func (k EdgeKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.U, k.V)
}

// Graph is an immutable simple undirected graph.
//
// Invariants (enforced by Builder):
//   - vertices is strictly ascending and non-negative.
//   - edges holds no loops and no two edges with the same Key.
//   - adj[v] lists v's neighbors in edge emission order.
type Graph struct {
	vertices []int           // ascending vertex ids
	index    map[int]int     // id -> position in vertices
	edges    []Edge          // emission order
	adj      map[int][]int   // id -> neighbors (emission order)
	edgeSet  map[EdgeKey]int // normalized edge -> position in edges
}

// Partition is a bipartition of a graph's vertex set.
// First and Second are disjoint and their union is V.
type Partition struct {
	First  []int
	Second []int
}

// IsZero reports whether p carries no sides at all.
func (p Partition) IsZero() bool {
	return len(p.First) == 0 && len(p.Second) == 0
}
