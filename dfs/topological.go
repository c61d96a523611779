// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/dfs
//
// topological.go: topological order of the directed view of g.
//
// Contract:
//   - Every edge is read as From→To, exactly as emitted.
//   - Roots are tried in ascending id order; out-neighbors in emission order.
//   - The order is the reverse of the DFS finish sequence.
//   - A back edge (to a Gray vertex) means a directed cycle → ErrCycleDetected.
//   - If g is acyclic as an undirected graph, its directed view is a DAG and
//     the sort always succeeds with all |V| vertices.
//
// Complexity: O(V + E).

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext makes TopologicalSort observe ctx.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	opts  topoOptions
	out   map[int][]int // directed adjacency From→To
	state map[int]int
	order []int
}

// TopologicalSort returns a topological order of g's directed view.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	s := &topoSorter{
		opts:  opts,
		out:   make(map[int][]int, len(verts)),
		state: make(map[int]int, len(verts)),
		order: make([]int, 0, len(verts)),
	}
	for _, e := range g.Edges() {
		s.out[e.From] = append(s.out[e.From], e.To)
	}

	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return nil, err
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id int) error {
	if err := s.opts.ctx.Err(); err != nil {
		return err
	}
	switch s.state[id] {
	case Gray:
		return fmt.Errorf("TopologicalSort: back edge into %d: %w", id, ErrCycleDetected)
	case Black:
		return nil
	}
	s.state[id] = Gray
	for _, to := range s.out[id] {
		if err := s.visit(to); err != nil {
			return err
		}
	}
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
