package bfs

import (
	"github.com/katalvlaran/lvlath-corpus/core"
)

// Components returns the connected components of g. Each component is in
// BFS order from its smallest vertex; components are ordered by that vertex.
// Isolated vertices form singleton components. A nil or empty graph yields
// an empty slice.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return [][]int{}
	}
	seen := make(map[int]bool, g.VertexCount())
	out := make([][]int, 0)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, _ := BFS(g, v) // v ∈ V and default options cannot fail
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// ComponentIndex maps every vertex to the index of its component in comps.
func ComponentIndex(comps [][]int) map[int]int {
	idx := make(map[int]int)
	for i, comp := range comps {
		for _, v := range comp {
			idx[v] = i
		}
	}

	return idx
}
