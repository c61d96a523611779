// SPDX-License-Identifier: MIT
// Package: metric
//
// Purpose:
//   - Distance-based and cycle-based scalar invariants of a core.Graph:
//     eccentricity, diameter, radius, girth and triangle count.
//
// Contract:
//   - Hop distances come from matrix.FloydWarshall over the adjacency matrix.
//   - Disconnected graphs have infinite diameter and radius; acyclic graphs
//     have infinite girth. Infinity is reported as Finite=false, never as a
//     magic integer.
//   - A single vertex has diameter 0 and radius 0.
//
// Complexity:
//   - Compute:   O(V³) (Floyd–Warshall) + O(V³) (A³ for triangles).
//   - Girth:     O(V·(V+E)) (one BFS per vertex).

package metric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/bfs"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/matrix"
)

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("metric: graph is nil")

// Value is a non-negative integer that may be infinite.
type Value struct {
	N      int
	Finite bool
}

// FiniteValue wraps n as a finite Value.
func FiniteValue(n int) Value { return Value{N: n, Finite: true} }

// Infinite is the unbounded Value.
var Infinite = Value{}

// String renders the value, "inf" when unbounded.
func (v Value) String() string {
	if !v.Finite {
		return "inf"
	}

	return fmt.Sprintf("%d", v.N)
}

// Summary bundles every metric computed from one APSP pass.
type Summary struct {
	Eccentricity map[int]Value
	Diameter     Value
	Radius       Value
	Girth        Value
	Triangles    int
}

// Compute returns all metrics for g.
func Compute(g *core.Graph) (*Summary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	am, err := matrix.BuildAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("metric: %w", err)
	}
	ecc, err := eccentricities(am)
	if err != nil {
		return nil, err
	}
	tri, err := triangles(am.Mat)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Eccentricity: ecc,
		Girth:        Girth(g),
		Triangles:    tri,
	}
	s.Diameter, s.Radius = extremes(am.Vertices, ecc)

	return s, nil
}

// Eccentricities returns the eccentricity of every vertex; a vertex that
// cannot reach some other vertex has an infinite eccentricity.
func Eccentricities(g *core.Graph) (map[int]Value, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	am, err := matrix.BuildAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("metric: %w", err)
	}

	return eccentricities(am)
}

// Diameter returns the largest eccentricity.
func Diameter(g *core.Graph) (Value, error) {
	s, err := Compute(g)
	if err != nil {
		return Infinite, err
	}

	return s.Diameter, nil
}

// Radius returns the smallest eccentricity.
func Radius(g *core.Graph) (Value, error) {
	s, err := Compute(g)
	if err != nil {
		return Infinite, err
	}

	return s.Radius, nil
}

func eccentricities(am *matrix.AdjacencyMatrix) (map[int]Value, error) {
	dist, err := matrix.FloydWarshall(am.Mat)
	if err != nil {
		return nil, fmt.Errorf("metric: %w", err)
	}
	out := make(map[int]Value, len(am.Vertices))
	for i, v := range am.Vertices {
		row, _ := dist.Row(i)
		ecc := FiniteValue(0)
		for _, d := range row {
			if d == matrix.Inf {
				ecc = Infinite
				break
			}
			if d > ecc.N {
				ecc.N = d
			}
		}
		out[v] = ecc
	}

	return out, nil
}

// extremes folds eccentricities into (diameter, radius). Any infinite
// eccentricity means the graph is disconnected, so both are infinite.
func extremes(order []int, ecc map[int]Value) (Value, Value) {
	if len(order) == 0 {
		return FiniteValue(0), FiniteValue(0)
	}
	diam, rad := FiniteValue(0), FiniteValue(-1)
	for _, v := range order {
		e := ecc[v]
		if !e.Finite {
			return Infinite, Infinite
		}
		if e.N > diam.N {
			diam.N = e.N
		}
		if rad.N < 0 || e.N < rad.N {
			rad.N = e.N
		}
	}

	return diam, rad
}

// Girth returns the length of a shortest cycle, or Infinite when g is acyclic.
// A BFS from every vertex scores each non-tree edge (a,b) as
// depth[a]+depth[b]+1; the minimum over all roots is exact.
func Girth(g *core.Graph) Value {
	if g == nil || g.EdgeCount() < 3 {
		return Infinite
	}
	best := Infinite
	edges := g.Edges()
	for _, root := range g.Vertices() {
		res, err := bfs.BFS(g, root)
		if err != nil {
			continue
		}
		for _, e := range edges {
			da, okA := res.Depth[e.From]
			db, okB := res.Depth[e.To]
			if !okA || !okB {
				continue
			}
			if p, ok := res.Parent[e.From]; ok && p == e.To {
				continue
			}
			if p, ok := res.Parent[e.To]; ok && p == e.From {
				continue
			}
			if l := da + db + 1; !best.Finite || l < best.N {
				best = FiniteValue(l)
			}
		}
		if best.Finite && best.N == 3 {
			break
		}
	}

	return best
}

// Triangles returns the number of triangles, trace(A³)/6.
func Triangles(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	am, err := matrix.BuildAdjacency(g)
	if err != nil {
		return 0, fmt.Errorf("metric: %w", err)
	}

	return triangles(am.Mat)
}

func triangles(a *matrix.Dense) (int, error) {
	a2, err := matrix.Mul(a, a)
	if err != nil {
		return 0, fmt.Errorf("metric: triangles: %w", err)
	}
	a3, err := matrix.Mul(a2, a)
	if err != nil {
		return 0, fmt.Errorf("metric: triangles: %w", err)
	}
	tr, err := a3.Trace()
	if err != nil {
		return 0, fmt.Errorf("metric: triangles: %w", err)
	}

	return tr / 6, nil
}
