package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/dfs"
)

func TestHasCycle_Table(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  bool
	}{
		{"empty", 0, nil, false},
		{"single vertex", 1, nil, false},
		{"single edge", 2, []core.Edge{{From: 0, To: 1}}, false},
		{"path", 4, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, false},
		{"triangle", 3, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, true},
		{"forest", 6, []core.Edge{{From: 0, To: 1}, {From: 2, To: 3}, {From: 3, To: 4}}, false},
		{"cycle in second component", 7, []core.Edge{
			{From: 0, To: 1}, {From: 3, To: 4}, {From: 4, To: 5}, {From: 5, To: 6}, {From: 6, To: 3},
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.MustGraph(core.Range(tc.n), tc.edges)
			assert.Equal(t, tc.want, dfs.HasCycle(g))
		})
	}
	assert.False(t, dfs.HasCycle(nil))
}

func TestFindCycle_ReturnsClosedWalk(t *testing.T) {
	g := core.MustGraph(core.Range(5), []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}, {From: 3, To: 4},
	})
	found, cycle := dfs.FindCycle(g)
	require.True(t, found)
	require.GreaterOrEqual(t, len(cycle), 4)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	for i := 0; i+1 < len(cycle); i++ {
		assert.True(t, g.HasEdge(cycle[i], cycle[i+1]), "%v", cycle)
	}
}

// TestHasCycle_ForestEquivalence checks acyclic ⇔ |E| = |V| - components on
// every labeled graph with four vertices.
func TestHasCycle_ForestEquivalence(t *testing.T) {
	en, err := builder.NewEnumerator(4)
	require.NoError(t, err)
	for mask := uint64(0); mask < en.Count(); mask++ {
		g, err := en.Graph(mask)
		require.NoError(t, err)
		comps := components(g)
		isForest := g.EdgeCount() == g.VertexCount()-comps
		assert.Equal(t, !isForest, dfs.HasCycle(g), "mask %b", mask)
	}
}

// components counts connected components with the full-traversal DFS.
func components(g *core.Graph) int {
	count := 0
	seen := map[int]bool{}
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		count++
		res, _ := dfs.DFS(g, v)
		for u := range res.Visited {
			seen[u] = true
		}
	}

	return count
}
