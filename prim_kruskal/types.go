package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// ErrInvalidGraph is returned for a nil graph or an unknown method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrDisconnected is returned when WithRequireConnected is set and g has
// more than one component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Method names accepted by WithMethod.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// Forest is a spanning forest: Edges span every component of the graph.
type Forest struct {
	Edges  []core.Edge
	Weight int64
	Trees  int // number of trees = number of connected components
}

// Spanning reports whether the forest is a single spanning tree.
func (f Forest) Spanning() bool { return f.Trees <= 1 }

// MSTOptions configures Compute.
type MSTOptions struct {
	Method           string
	Root             int
	HasRoot          bool
	Weight           func(core.Edge) int64
	RequireConnected bool
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects MethodKruskal (default) or MethodPrim.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the Prim root of the first tree.
func WithRoot(root int) Option {
	return func(o *MSTOptions) {
		o.Root = root
		o.HasRoot = true
	}
}

// WithWeight overrides the unit edge weight. Panics on nil.
func WithWeight(fn func(core.Edge) int64) Option {
	if fn == nil {
		panic("prim_kruskal: WithWeight(nil)")
	}

	return func(o *MSTOptions) { o.Weight = fn }
}

// WithRequireConnected makes a multi-tree result an ErrDisconnected error.
func WithRequireConnected() Option {
	return func(o *MSTOptions) { o.RequireConnected = true }
}

// DefaultOptions returns Kruskal with unit weights.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Weight: func(core.Edge) int64 { return 1 },
	}
}

// Compute dispatches to Kruskal or Prim.
func Compute(g *core.Graph, opts ...Option) (Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Forest{}, ErrInvalidGraph
	}

	var f Forest
	switch o.Method {
	case MethodKruskal:
		f = kruskal(g, o.Weight)
	case MethodPrim:
		if o.HasRoot && !g.HasVertex(o.Root) {
			return Forest{}, fmt.Errorf("Prim root %d: %w", o.Root, core.ErrVertexNotFound)
		}
		f = prim(g, o)
	default:
		return Forest{}, fmt.Errorf("method %q: %w", o.Method, ErrInvalidGraph)
	}
	if o.RequireConnected && !f.Spanning() {
		return Forest{}, fmt.Errorf("%d trees: %w", f.Trees, ErrDisconnected)
	}

	return f, nil
}
