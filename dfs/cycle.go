// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/dfs
//
// cycle.go: undirected cycle detection.
//
// Contract:
//   - g is read as a simple undirected graph: a cycle exists iff some DFS
//     tree meets an already-visited vertex other than its tree parent.
//   - A graph without cycles is a forest, so HasCycle(g) == false iff
//     |E| = |V| - #components.
//   - FindCycle returns one cycle as a closed vertex walk [v0 … vk v0].
//
// Complexity: O(V + E) time, O(V) memory.

package dfs

import (
	"github.com/katalvlaran/lvlath-corpus/core"
)

// cycleFinder holds traversal state for undirected cycle search.
type cycleFinder struct {
	graph  *core.Graph
	state  map[int]int
	parent map[int]int
	cycle  []int
}

// HasCycle reports whether the undirected graph g contains a cycle.
// A nil graph has none.
func HasCycle(g *core.Graph) bool {
	c, _ := FindCycle(g)

	return c
}

// FindCycle reports whether g has a cycle and returns one such cycle.
func FindCycle(g *core.Graph) (bool, []int) {
	if g == nil {
		return false, nil
	}
	f := &cycleFinder{
		graph:  g,
		state:  make(map[int]int, g.VertexCount()),
		parent: make(map[int]int, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if f.state[v] != White {
			continue
		}
		f.parent[v] = v
		if f.visit(v) {
			return true, f.cycle
		}
	}

	return false, nil
}

// visit explores id; returns true as soon as a cycle is recorded.
func (f *cycleFinder) visit(id int) bool {
	f.state[id] = Gray
	nbrs, _ := f.graph.Neighbors(id)
	for _, nid := range nbrs {
		switch f.state[nid] {
		case White:
			f.parent[nid] = id
			if f.visit(nid) {
				return true
			}
		case Gray:
			if nid == f.parent[id] {
				continue // the tree edge we arrived by
			}
			f.cycle = f.unwind(id, nid)

			return true
		}
	}
	f.state[id] = Black

	return false
}

// unwind walks parent links from tail back to head and closes the loop.
func (f *cycleFinder) unwind(tail, head int) []int {
	walk := []int{tail}
	for cur := tail; cur != head; {
		cur = f.parent[cur]
		walk = append(walk, cur)
	}
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return append(walk, head)
}
