package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// DisjointSet is a union-find structure with path halving and union by rank.
type DisjointSet struct {
	parent map[int]int
	rank   map[int]int
	sets   int
}

// NewDisjointSet creates singleton sets for ids.
func NewDisjointSet(ids []int) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := d.parent[id]; ok {
			continue
		}
		d.parent[id] = id
		d.sets++
	}

	return d
}

// Find returns the representative of u's set.
func (d *DisjointSet) Find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// Union merges the sets of u and v; it reports false if already joined.
func (d *DisjointSet) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
	d.sets--

	return true
}

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Kruskal returns a unit-weight spanning forest of g.
func Kruskal(g *core.Graph) (Forest, error) {
	return Compute(g, WithMethod(MethodKruskal))
}

func kruskal(g *core.Graph, weight func(core.Edge) int64) Forest {
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return weight(edges[i]) < weight(edges[j])
	})

	ds := NewDisjointSet(g.Vertices())
	f := Forest{Edges: make([]core.Edge, 0, g.VertexCount())}
	for _, e := range edges {
		if ds.Sets() == 1 {
			break
		}
		if ds.Union(e.From, e.To) {
			f.Edges = append(f.Edges, e)
			f.Weight += weight(e)
		}
	}
	f.Trees = ds.Sets()

	return f
}
