package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start, or over all components
// when WithFullTraversal is set (start is then ignored).
// A partially filled Result is returned together with any abort error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &dfsWalker{graph: g, opts: o, res: &Result{
		PreOrder:  make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make(map[int]int, n),
		Parent:    make(map[int]int, n),
		Visited:   make(map[int]bool, n),
	}}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, then recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	nbrs, _ := w.graph.Neighbors(id) // id ∈ V
	for _, nid := range nbrs {
		if w.res.Visited[nid] || (w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth) {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
