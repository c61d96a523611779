// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// enumerate.go: exhaustive enumeration of labeled simple graphs.
//
// Canonical model:
//   - Candidate edges: every (i,j), 0 ≤ i < j < n, in lexicographic order.
//     Candidate k is bit k (least significant first).
//   - Graph(mask) holds exactly the candidates whose bit is set, emitted in
//     candidate order; its edge count is popcount(mask).
//   - Masks run over [0, 2^C(n,2)), so Count() = 2^C(n,2).
//
// Contract:
//   - 1 ≤ n ≤ MaxExhaustiveNodes (else ErrTooFewVertices / ErrTooManyVertices).
//   - Graph(mask) with mask ≥ Count() → ErrParamOutOfRange.
//   - Deterministic; no RNG involved.
//
// Complexity: Graph(mask) is O(n + C(n,2)); Each is O(Count()·C(n,2)).

package builder

import (
	"context"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// MaxExhaustiveNodes caps n so that 2^C(n,2) stays addressable (C(8,2) = 28).
const MaxExhaustiveNodes = 8

// Enumerator walks all labeled simple graphs on a fixed vertex count.
type Enumerator struct {
	n          int
	candidates []core.Edge
}

// NewEnumerator validates n and prepares the candidate edge list.
func NewEnumerator(n int) (*Enumerator, error) {
	if err := checkMin(methodEnumerate, n, 1); err != nil {
		return nil, err
	}
	if n > MaxExhaustiveNodes {
		return nil, fmt.Errorf("%s: n=%d > max=%d: %w", methodEnumerate, n, MaxExhaustiveNodes, ErrTooManyVertices)
	}

	return &Enumerator{n: n, candidates: candidatePairs(n)}, nil
}

// Nodes returns n.
func (en *Enumerator) Nodes() int { return en.n }

// Candidates returns the candidate edges in bit order.
func (en *Enumerator) Candidates() []core.Edge {
	out := make([]core.Edge, len(en.candidates))
	copy(out, en.candidates)

	return out
}

// Count returns 2^C(n,2).
func (en *Enumerator) Count() uint64 {
	return uint64(1) << uint(len(en.candidates))
}

// Graph materializes the graph encoded by mask.
func (en *Enumerator) Graph(mask uint64) (*core.Graph, error) {
	if mask >= en.Count() {
		return nil, fmt.Errorf("%s: mask=%d ≥ count=%d: %w", methodEnumerate, mask, en.Count(), ErrParamOutOfRange)
	}
	b := core.NewBuilder(en.n)
	_ = b.AddVertices(core.Range(en.n)...)
	for k, e := range en.candidates {
		if mask&(uint64(1)<<uint(k)) == 0 {
			continue
		}
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodEnumerate, ErrConstructFailed, err)
		}
	}

	return b.Build(), nil
}

// Sample wraps Graph(mask) as an exhaustive Sample; Params carries the
// mask and the edge count.
func (en *Enumerator) Sample(mask uint64) (*Sample, error) {
	g, err := en.Graph(mask)
	if err != nil {
		return nil, err
	}

	return &Sample{
		Exhaustive: true,
		Graph:      g,
		Params: Params{
			{Name: "mask", Value: strconv.FormatUint(mask, 10)},
			{Name: "m", Value: strconv.Itoa(bits.OnesCount64(mask))},
		},
	}, nil
}

// Each calls fn for every mask in ascending order. It stops early when fn
// returns an error or ctx is cancelled, and returns that error.
func (en *Enumerator) Each(ctx context.Context, fn func(mask uint64, g *core.Graph) error) error {
	count := en.Count()
	for mask := uint64(0); mask < count; mask++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, err := en.Graph(mask)
		if err != nil {
			return err
		}
		if err := fn(mask, g); err != nil {
			return err
		}
	}

	return nil
}
