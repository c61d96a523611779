// Package dfs implements depth-first search, undirected cycle detection and
// topological sorting over core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): recursive traversal from one root, or a full
//     forest via WithFullTraversal; records discovery (pre-order) and finish
//     (post-order) sequences, depths and parents.
//   - HasCycle(g): undirected cycle detection (a back edge to a visited
//     vertex other than the DFS parent).
//   - TopologicalSort(g): orders vertices of the DIRECTED VIEW of g, where
//     every edge is read From→To as emitted; ErrCycleDetected on a directed
//     cycle.
//
// Determinism: roots are tried in ascending id order and neighbors in edge
// emission order.
//
// Complexity: O(V + E) time, O(V) memory (recursion depth ≤ V).
package dfs

import (
	"context"
	"errors"
)

// Vertex colors for the three-state traversal.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is missing.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the directed view has a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS.
type Option func(*Options)

// Options holds DFS configuration.
type Options struct {
	// Ctx is checked on every vertex entry.
	Ctx context.Context

	// OnVisit is the pre-order hook; an error aborts the traversal.
	OnVisit func(id int) error

	// OnExit is the post-order hook; an error aborts the traversal.
	OnExit func(id int) error

	// MaxDepth stops recursion beyond the given depth (-1 = unlimited).
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex (ascending id).
	FullTraversal bool
}

// DefaultOptions returns unlimited single-root traversal with no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFullTraversal covers every component, not just the start's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects DFS output.
type Result struct {
	PreOrder  []int        // discovery order
	PostOrder []int        // finish order
	Depth     map[int]int  // depth in the DFS tree (roots at 0)
	Parent    map[int]int  // tree parent; roots have none
	Visited   map[int]bool // every discovered vertex
}
