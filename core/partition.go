// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/core
//
// partition.go: bipartition checks.

package core

import (
	"fmt"
)

// Validate checks that p.First and p.Second are disjoint, contain only
// members of g, and together cover every vertex of g.
func (p Partition) Validate(g *Graph) error {
	seen := make(map[int]struct{}, g.VertexCount())
	for _, side := range [][]int{p.First, p.Second} {
		for _, id := range side {
			if !g.HasVertex(id) {
				return fmt.Errorf("partition vertex %d: %w", id, ErrVertexNotFound)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("vertex %d on both sides or repeated: %w", id, ErrBadPartition)
			}
			seen[id] = struct{}{}
		}
	}
	if len(seen) != g.VertexCount() {
		return fmt.Errorf("covers %d of %d vertices: %w", len(seen), g.VertexCount(), ErrBadPartition)
	}

	return nil
}

// Crossing reports whether every edge of g joins First to Second.
func (p Partition) Crossing(g *Graph) bool {
	first := make(map[int]struct{}, len(p.First))
	for _, id := range p.First {
		first[id] = struct{}{}
	}
	for _, e := range g.edges {
		_, a := first[e.From]
		_, b := first[e.To]
		if a == b {
			return false
		}
	}

	return true
}

// Relabel maps both sides through perm (original id -> new id).
// Ids missing from perm are kept as-is.
func (p Partition) Relabel(perm map[int]int) Partition {
	mapSide := func(side []int) []int {
		out := make([]int, len(side))
		for i, id := range side {
			if to, ok := perm[id]; ok {
				out[i] = to
			} else {
				out[i] = id
			}
		}

		return out
	}

	return Partition{First: mapSide(p.First), Second: mapSide(p.Second)}
}
