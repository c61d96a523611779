// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/property
//
// extractor.go: one Add* operation per taxonomy entry.
//
// Contract:
//   - Every operation tolerates a graph with 0 edges or a single vertex.
//   - Sampling draws only from non-empty candidate sets; no loop waits on
//     a rejection that can never succeed.
//   - All randomness comes from the rng passed to NewExtractor.
//   - Vertex pairs are rendered "(u,v)", vertex sequences "(a,b,c)".

package property

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/bfs"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/dfs"
	"github.com/katalvlaran/lvlath-corpus/metric"
	"github.com/katalvlaran/lvlath-corpus/prim_kruskal"
)

// Option configures an Extractor.
type Option func(*extractorOptions)

type extractorOptions struct {
	spanningMethod string
}

// WithSpanningMethod selects prim_kruskal.MethodKruskal (default) or MethodPrim.
func WithSpanningMethod(method string) Option {
	return func(o *extractorOptions) { o.spanningMethod = method }
}

// Extractor builds one Record for one graph.
type Extractor struct {
	g    *core.Graph
	rng  *rand.Rand
	opts extractorOptions
	rec  *Record

	comps   [][]int         // lazily computed connected components
	summary *metric.Summary // lazily computed distance metrics
}

// NewExtractor binds g and rng. Both are required.
func NewExtractor(g *core.Graph, rng *rand.Rand, opts ...Option) (*Extractor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	o := extractorOptions{spanningMethod: prim_kruskal.MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return &Extractor{g: g, rng: rng, opts: o, rec: newRecord()}, nil
}

// Record freezes and returns the record. Later Add* calls fail with ErrFrozen.
func (x *Extractor) Record() *Record {
	x.rec.freeze()

	return x.rec
}

// ExtractAll adds every computable property in taxonomy order.
func (x *Extractor) ExtractAll() error {
	return x.Extract(Computable()...)
}

// Extract adds the requested properties in the given order. The four
// connectivity names share one computation and are added together the
// first time any of them is requested.
func (x *Extractor) Extract(names ...Name) error {
	for _, n := range names {
		if n.Reserved() {
			return fmt.Errorf("Extract(%s): %w", n, ErrReservedName)
		}
		if x.rec.Has(n) {
			continue
		}
		var err error
		switch n {
		case NodeCount:
			err = x.AddNodeCount()
		case EdgeCount:
			err = x.AddEdgeCount()
		case EdgeAbsence:
			err = x.AddEdgeAbsence()
		case NumberOfConnectedComponents, ConnectedComponents, ConnectivityTrue, ConnectivityFalse:
			err = x.AddConnectivity()
		case SpanningTree:
			err = x.AddSpanningTree()
		case BFSTraversalOrder:
			err = x.AddBFSOrder()
		case DFSTraversalOrder:
			err = x.AddDFSOrder()
		case CycleCheck:
			err = x.AddCycleCheck()
		case TopologicalSortOrder:
			err = x.AddTopologicalSort()
		case Diameter:
			err = x.AddDiameter()
		case Radius:
			err = x.AddRadius()
		case Girth:
			err = x.AddGirth()
		case NumberOfTriangles:
			err = x.AddTriangles()
		default:
			err = fmt.Errorf("Extract(%s): %w", n, ErrUnknownName)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// AddNodeCount adds node_count.
func (x *Extractor) AddNodeCount() error {
	return x.rec.put(NodeCount, x.g.VertexCount())
}

// AddEdgeCount adds edge_count.
func (x *Extractor) AddEdgeCount() error {
	return x.rec.put(EdgeCount, x.g.EdgeCount())
}

// AddEdgeAbsence adds ⌊|E|/2⌋ distinct non-adjacent pairs, sampled without
// replacement and capped at the number of non-edges.
func (x *Extractor) AddEdgeAbsence() error {
	pairs := []string{}
	k := x.g.EdgeCount() / 2
	if k > 0 {
		vs := x.g.Vertices()
		var absent [][2]int
		for i := 0; i < len(vs); i++ {
			for j := i + 1; j < len(vs); j++ {
				if !x.g.HasEdge(vs[i], vs[j]) {
					absent = append(absent, [2]int{vs[i], vs[j]})
				}
			}
		}
		if k > len(absent) {
			k = len(absent)
		}
		// partial Fisher–Yates: the first k slots are a uniform k-subset
		for i := 0; i < k; i++ {
			j := i + x.rng.Intn(len(absent)-i)
			absent[i], absent[j] = absent[j], absent[i]
			pairs = append(pairs, pair(absent[i][0], absent[i][1]))
		}
	}

	return x.rec.put(EdgeAbsence, pairs)
}

// AddConnectivity adds number_of_connected_components, connected_components,
// connectivity_true and connectivity_false.
//
// ⌊|V|/2⌋ queries are drawn per list according to the component regime:
// a connected graph yields only true pairs, an edgeless graph only false
// pairs, anything else both (true pairs from one component of size ≥ 2,
// false pairs across two different components). Duplicates are allowed.
func (x *Extractor) AddConnectivity() error {
	comps := x.components()
	if err := x.rec.put(NumberOfConnectedComponents, len(comps)); err != nil {
		return err
	}
	if err := x.rec.put(ConnectedComponents, comps); err != nil {
		return err
	}

	vs := x.g.Vertices()
	k := len(vs) / 2
	trueQ, falseQ := []string{}, []string{}
	switch {
	case len(comps) == 1:
		for i := 0; i < k; i++ {
			u, v := x.distinctPair(vs)
			trueQ = append(trueQ, pair(u, v))
		}
	case len(comps) == len(vs):
		for i := 0; i < k; i++ {
			u, v := x.distinctPair(vs)
			falseQ = append(falseQ, pair(u, v))
		}
	default:
		var big [][]int
		for _, c := range comps {
			if len(c) >= 2 {
				big = append(big, c)
			}
		}
		for i := 0; i < k; i++ {
			c := big[x.rng.Intn(len(big))]
			u, v := x.distinctPair(c)
			trueQ = append(trueQ, pair(u, v))
		}
		for i := 0; i < k; i++ {
			a, b := x.distinctIndex(len(comps))
			ca, cb := comps[a], comps[b]
			falseQ = append(falseQ, pair(ca[x.rng.Intn(len(ca))], cb[x.rng.Intn(len(cb))]))
		}
	}
	if err := x.rec.put(ConnectivityTrue, trueQ); err != nil {
		return err
	}

	return x.rec.put(ConnectivityFalse, falseQ)
}

// AddSpanningTree adds the spanning forest edges as emitted by the selected method.
func (x *Extractor) AddSpanningTree() error {
	f, err := prim_kruskal.Compute(x.g, prim_kruskal.WithMethod(x.opts.spanningMethod))
	if err != nil {
		return fmt.Errorf("AddSpanningTree: %w", err)
	}
	out := make([]string, 0, len(f.Edges))
	for _, e := range f.Edges {
		out = append(out, e.String())
	}

	return x.rec.put(SpanningTree, out)
}

// AddBFSOrder adds max(1, ⌊|V|/4⌋) BFS traversals from random starts.
func (x *Extractor) AddBFSOrder() error {
	return x.addTraversals(BFSTraversalOrder, func(start int) ([]int, error) {
		res, err := bfs.BFS(x.g, start)
		if err != nil {
			return nil, err
		}

		return res.Order, nil
	})
}

// AddDFSOrder adds max(1, ⌊|V|/4⌋) DFS pre-order traversals from random starts.
func (x *Extractor) AddDFSOrder() error {
	return x.addTraversals(DFSTraversalOrder, func(start int) ([]int, error) {
		res, err := dfs.DFS(x.g, start)
		if err != nil {
			return nil, err
		}

		return res.PreOrder, nil
	})
}

func (x *Extractor) addTraversals(n Name, walk func(int) ([]int, error)) error {
	vs := x.g.Vertices()
	out := []Traversal{}
	if len(vs) > 0 {
		starts := len(vs) / 4
		if starts == 0 {
			starts = 1
		}
		for i := 0; i < starts; i++ {
			s := vs[x.rng.Intn(len(vs))]
			order, err := walk(s)
			if err != nil {
				return fmt.Errorf("%s from %d: %w", n, s, err)
			}
			out = append(out, Traversal{Start: s, Order: sequence(order)})
		}
	}

	return x.rec.put(n, out)
}

// AddCycleCheck adds cycle_check.
func (x *Extractor) AddCycleCheck() error {
	return x.rec.put(CycleCheck, dfs.HasCycle(x.g))
}

// AddTopologicalSort adds topological_sort_order for the From→To view of g.
// A cyclic graph has no such order and the property is left out.
func (x *Extractor) AddTopologicalSort() error {
	if x.rec.frozen {
		return fmt.Errorf("AddTopologicalSort: %w", ErrFrozen)
	}
	if dfs.HasCycle(x.g) {
		return nil
	}
	order, err := dfs.TopologicalSort(x.g)
	if err != nil {
		return fmt.Errorf("AddTopologicalSort: %w", err)
	}

	return x.rec.put(TopologicalSortOrder, sequence(order))
}

// AddDiameter adds diameter, "inf" when disconnected.
func (x *Extractor) AddDiameter() error {
	s, err := x.metrics()
	if err != nil {
		return err
	}

	return x.rec.put(Diameter, valueOf(s.Diameter))
}

// AddRadius adds radius, "inf" when disconnected.
func (x *Extractor) AddRadius() error {
	s, err := x.metrics()
	if err != nil {
		return err
	}

	return x.rec.put(Radius, valueOf(s.Radius))
}

// AddGirth adds girth, "inf" when acyclic.
func (x *Extractor) AddGirth() error {
	s, err := x.metrics()
	if err != nil {
		return err
	}

	return x.rec.put(Girth, valueOf(s.Girth))
}

// AddTriangles adds number_of_triangles.
func (x *Extractor) AddTriangles() error {
	s, err := x.metrics()
	if err != nil {
		return err
	}

	return x.rec.put(NumberOfTriangles, s.Triangles)
}

func (x *Extractor) components() [][]int {
	if x.comps == nil {
		x.comps = bfs.Components(x.g)
	}

	return x.comps
}

func (x *Extractor) metrics() (*metric.Summary, error) {
	if x.summary == nil {
		s, err := metric.Compute(x.g)
		if err != nil {
			return nil, fmt.Errorf("property: %w", err)
		}
		x.summary = s
	}

	return x.summary, nil
}

// distinctPair draws two different elements of xs; len(xs) ≥ 2.
func (x *Extractor) distinctPair(xs []int) (int, int) {
	i, j := x.distinctIndex(len(xs))

	return xs[i], xs[j]
}

// distinctIndex draws i != j uniformly from [0,n); n ≥ 2.
func (x *Extractor) distinctIndex(n int) (int, int) {
	i := x.rng.Intn(n)
	j := x.rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}

func valueOf(v metric.Value) interface{} {
	if !v.Finite {
		return InfValue
	}

	return v.N
}

// InfValue is the JSON value of an unbounded metric.
const InfValue = "inf"

func pair(u, v int) string {
	return "(" + strconv.Itoa(u) + "," + strconv.Itoa(v) + ")"
}

// sequence renders ids as "(a,b,c)"; an empty slice renders "".
func sequence(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return "(" + strings.Join(parts, ",") + ")"
}
