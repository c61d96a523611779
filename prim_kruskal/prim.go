package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// Prim returns a unit-weight spanning forest of g whose first tree is grown from root.
func Prim(g *core.Graph, root int) (Forest, error) {
	return Compute(g, WithMethod(MethodPrim), WithRoot(root))
}

func prim(g *core.Graph, o MSTOptions) Forest {
	// Incident edges per vertex, tagged with their emission index for tie-breaks.
	incident := make(map[int][]pqItem, g.VertexCount())
	for i, e := range g.Edges() {
		w := o.Weight(e)
		incident[e.From] = append(incident[e.From], pqItem{edge: e, to: e.To, weight: w, index: i})
		incident[e.To] = append(incident[e.To], pqItem{edge: e, to: e.From, weight: w, index: i})
	}

	visited := make(map[int]bool, g.VertexCount())
	f := Forest{Edges: make([]core.Edge, 0, g.VertexCount())}
	grow := func(root int) {
		f.Trees++
		visited[root] = true
		pq := &edgePQ{}
		for _, it := range incident[root] {
			heap.Push(pq, it)
		}
		for pq.Len() > 0 {
			it := heap.Pop(pq).(pqItem)
			if visited[it.to] {
				continue
			}
			visited[it.to] = true
			f.Edges = append(f.Edges, it.edge)
			f.Weight += it.weight
			for _, next := range incident[it.to] {
				if !visited[next.to] {
					heap.Push(pq, next)
				}
			}
		}
	}

	if o.HasRoot {
		grow(o.Root)
	}
	for _, v := range g.Vertices() {
		if !visited[v] {
			grow(v)
		}
	}

	return f
}

// pqItem is a candidate edge leading to vertex to.
type pqItem struct {
	edge   core.Edge
	to     int
	weight int64
	index  int
}

// edgePQ is a min-heap by (weight, emission index).
type edgePQ []pqItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].index < pq[j].index
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
