// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// api.go: Constructor type, Build orchestrator and the Sample it returns.
//
// Design contract:
//   - One orchestrator: Build(cons, opts...). Resolves cfg, runs cons once.
//   - Constructors validate parameters before consuming randomness and
//     return sentinel errors wrapped with method context.
//   - Determinism: same constructor + same options/seed ⇒ identical Sample.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// Constructor stages one graph into d using the resolved builderConfig.
type Constructor func(d *draft, cfg builderConfig) error

// Param is one generator parameter recorded on a Sample, e.g. {"m", "7"}.
type Param struct {
	Name  string
	Value string
}

// Params is the ordered list of parameters drawn while building a sample.
type Params []Param

// Get returns the value recorded for name.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// Int returns the integer value recorded for name.
func (ps Params) Int(name string) (int, bool) {
	v, ok := ps.Get(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)

	return i, err == nil
}

// Sample is one generated graph plus everything needed to describe it.
// Exhaustive samples come from an Enumerator and carry no meaningful Family.
type Sample struct {
	Family     Family
	Exhaustive bool
	Graph      *core.Graph
	Partition  core.Partition // zero unless the family is bipartite
	Params     Params
}

// Build resolves opts and runs cons, returning the frozen sample.
// Any constructor error is wrapped as "Build: %w".
func Build(cons Constructor, opts ...BuilderOption) (*Sample, error) {
	if cons == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	d := &draft{}
	if err := cons(d, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if d.b == nil {
		return nil, fmt.Errorf("Build: constructor staged nothing: %w", ErrConstructFailed)
	}

	return &Sample{
		Family:    d.family,
		Graph:     d.b.Build(),
		Partition: d.partition,
		Params:    d.params,
	}, nil
}

// Generate is shorthand for ForFamily followed by Build.
func Generate(f Family, n int, opts ...BuilderOption) (*Sample, error) {
	cons, err := ForFamily(f, n)
	if err != nil {
		return nil, err
	}

	return Build(cons, opts...)
}

// draft is the mutable staging area handed to a Constructor.
type draft struct {
	family    Family
	b         *core.Builder
	partition core.Partition
	params    Params
}

// start resets d to n isolated vertices 0..n-1 tagged with family f.
func (d *draft) start(f Family, n int) {
	d.family = f
	d.b = core.NewBuilder(n)
	for i := 0; i < n; i++ {
		_ = d.b.AddVertex(i) // ids are non-negative by construction
	}
	d.partition = core.Partition{}
	d.params = nil
}

// edge adds {u,v}; a failure here means a constructor broke its own invariant.
func (d *draft) edge(method string, u, v int) error {
	if err := d.b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

func (d *draft) paramInt(name string, v int) {
	d.params = append(d.params, Param{Name: name, Value: strconv.Itoa(v)})
}

func (d *draft) paramFloat(name string, v float64) {
	d.params = append(d.params, Param{Name: name, Value: strconv.FormatFloat(v, 'g', -1, 64)})
}
