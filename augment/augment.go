// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/augment
//
// augment.go: node shifting, edge shifting and the reference variant set.
//
// Contract:
//   - NodeShift: uniform permutation π of Vertices(); vertex v ↦ π(v); edges
//     keep emission order and orientation (each endpoint mapped).
//   - EdgeShift: uniform permutation of Edges(); vertices untouched.
//   - DistinctNodeShift / DistinctEdgeShift: redraw until the result differs
//     from the reference; ErrDegenerateSample on a single-element space or
//     after maxAttempts draws.
//   - Variants: node-shift-1, node-shift-2 (≠ node-shift-1), edge-shift-1
//     (≠ source order), node-shift-k-edge-shift-1 (≠ node-shift-k order).
//     Variants that cannot exist for g are skipped.
//
// Complexity: O(V + E) per draw; distinctness loops multiply by the number
// of draws, expected ≤ 2 for any non-degenerate input.

package augment

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// Augmenter draws variants from one RNG stream.
type Augmenter struct {
	rng         *rand.Rand
	maxAttempts int
}

// Option customizes an Augmenter.
type Option func(*Augmenter)

// WithMaxAttempts bounds distinctness retries. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("augment: WithMaxAttempts(n<1)")
	}

	return func(a *Augmenter) { a.maxAttempts = n }
}

// New returns an Augmenter over rng. Panics on nil rng.
func New(rng *rand.Rand, opts ...Option) *Augmenter {
	if rng == nil {
		panic("augment: New(nil rng)")
	}
	a := &Augmenter{rng: rng, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// NodeShift relabels g by a uniformly random bijection of its vertex set.
func (a *Augmenter) NodeShift(g *core.Graph) (*core.Graph, Relabeling) {
	vertices := g.Vertices()
	perm := a.rng.Perm(len(vertices))

	rel := make(Relabeling, len(vertices))
	for i, v := range vertices {
		rel[i] = Mapping{From: v, To: vertices[perm[i]]}
	}

	return Relabel(g, rel), rel
}

// EdgeShift returns g with its edge emission order uniformly permuted.
func (a *Augmenter) EdgeShift(g *core.Graph) *core.Graph {
	edges := g.Edges()
	a.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return rebuild(g.Vertices(), edges)
}

// DistinctNodeShift draws relabelings until one differs from prev.
// A nil prev accepts the first draw.
func (a *Augmenter) DistinctNodeShift(g *core.Graph, prev Relabeling) (*core.Graph, Relabeling, error) {
	if prev != nil && g.VertexCount() < 2 {
		return nil, nil, fmt.Errorf("DistinctNodeShift: |V|=%d has one relabeling: %w", g.VertexCount(), ErrDegenerateSample)
	}
	for i := 0; i < a.maxAttempts; i++ {
		out, rel := a.NodeShift(g)
		if prev == nil || !rel.Equal(prev) {
			return out, rel, nil
		}
	}

	return nil, nil, fmt.Errorf("DistinctNodeShift: %d attempts: %w", a.maxAttempts, ErrDegenerateSample)
}

// DistinctEdgeShift draws edge orders until one differs from g's own order.
func (a *Augmenter) DistinctEdgeShift(g *core.Graph) (*core.Graph, error) {
	if g.EdgeCount() < 2 {
		return nil, fmt.Errorf("DistinctEdgeShift: |E|=%d has one ordering: %w", g.EdgeCount(), ErrDegenerateSample)
	}
	for i := 0; i < a.maxAttempts; i++ {
		out := a.EdgeShift(g)
		if !out.SameEdgeOrder(g) {
			return out, nil
		}
	}

	return nil, fmt.Errorf("DistinctEdgeShift: %d attempts: %w", a.maxAttempts, ErrDegenerateSample)
}

// Variants builds the reference variant set for g, skipping variants whose
// alternative space is degenerate. Exhausted retries on a non-degenerate
// space are returned as errors.
func (a *Augmenter) Variants(g *core.Graph) ([]Variant, error) {
	if g.VertexCount() == 0 {
		return nil, nil
	}
	out := make([]Variant, 0, 5)

	ns1, rel1 := a.NodeShift(g)
	out = append(out, Variant{Name: NodeShift1, Graph: ns1, Relabeling: rel1})

	var ns2 *core.Graph
	if g.VertexCount() >= 2 {
		var rel2 Relabeling
		var err error
		ns2, rel2, err = a.DistinctNodeShift(g, rel1)
		if err != nil {
			return nil, err
		}
		out = append(out, Variant{Name: NodeShift2, Graph: ns2, Relabeling: rel2})
	}

	if g.EdgeCount() < 2 {
		return out, nil
	}
	es1, err := a.DistinctEdgeShift(g)
	if err != nil {
		return nil, err
	}
	out = append(out, Variant{Name: EdgeShift1, Graph: es1})

	ns1es, err := a.DistinctEdgeShift(ns1)
	if err != nil {
		return nil, err
	}
	out = append(out, Variant{Name: NodeShift1EdgeShift, Graph: ns1es, Relabeling: rel1})

	if ns2 != nil {
		ns2es, err := a.DistinctEdgeShift(ns2)
		if err != nil {
			return nil, err
		}
		out = append(out, Variant{Name: NodeShift2EdgeShift, Graph: ns2es, Relabeling: out[1].Relabeling})
	}

	return out, nil
}

// Relabel applies rel to every vertex and edge endpoint of g, keeping edge
// order and orientation. rel must be a bijection on g's vertex set: exactly
// one entry per vertex, and its targets exactly that set. Anything else
// panics.
func Relabel(g *core.Graph, rel Relabeling) *core.Graph {
	checkBijection(g, rel)
	m := rel.Map()
	mapID := func(v int) int { return m[v] }

	vertices := g.Vertices()
	for i, v := range vertices {
		vertices[i] = mapID(v)
	}
	edges := g.Edges()
	for i, e := range edges {
		edges[i] = core.Edge{From: mapID(e.From), To: mapID(e.To)}
	}

	return rebuild(vertices, edges)
}

// checkBijection panics unless rel maps V(g) onto V(g) one-to-one.
func checkBijection(g *core.Graph, rel Relabeling) {
	vs := g.Vertices()
	if len(rel) != len(vs) {
		panic(fmt.Sprintf("augment: non-bijective relabeling: %d entries for %d vertices", len(rel), len(vs)))
	}
	from := make(map[int]struct{}, len(rel))
	to := make(map[int]struct{}, len(rel))
	for _, p := range rel {
		if !g.HasVertex(p.From) || !g.HasVertex(p.To) {
			panic(fmt.Sprintf("augment: non-bijective relabeling: %d->%d leaves the vertex set", p.From, p.To))
		}
		from[p.From] = struct{}{}
		to[p.To] = struct{}{}
	}
	if len(from) != len(vs) || len(to) != len(vs) {
		panic("augment: non-bijective relabeling: repeated source or target")
	}
}

// rebuild validates a transformed graph; failure is an invariant violation.
func rebuild(vertices []int, edges []core.Edge) *core.Graph {
	g, err := core.NewGraph(vertices, edges)
	if err != nil {
		panic(fmt.Sprintf("augment: transformed graph violates invariants: %v", err))
	}

	return g
}
