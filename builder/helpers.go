// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// helpers.go: small shared utilities for constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// Method tags used to prefix errors.
const (
	methodEmpty          = "Empty"
	methodComplete       = "Complete"
	methodGnm            = "Gnm"
	methodGnp            = "Gnp"
	methodBarabasiAlbert = "BarabasiAlbert"
	methodForest         = "BarabasiAlbertForest"
	methodScaleFree      = "ScaleFree"
	methodBipartiteGnm   = "BipartiteGnm"
	methodBipartiteGnp   = "BipartiteGnp"
	methodStar           = "Star"
	methodPath           = "Path"
	methodEnumerate      = "Enumerate"
)

// wrapf prefixes a sentinel with method context: "<method>: <msg>: <err>".
func wrapf(method, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}

// checkMin returns ErrTooFewVertices when n < floor.
func checkMin(method string, n, floor int) error {
	if n < floor {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, floor, ErrTooFewVertices)
	}

	return nil
}

// checkProbability returns ErrInvalidProbability when p ∉ [0,1].
func checkProbability(method string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return nil
}

// maxEdges returns n(n-1)/2.
func maxEdges(n int) int {
	return n * (n - 1) / 2
}

// candidatePairs lists every unordered pair (i,j), 0 ≤ i < j < n, in
// lexicographic order.
func candidatePairs(n int) []core.Edge {
	out := make([]core.Edge, 0, maxEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, core.Edge{From: i, To: j})
		}
	}

	return out
}

// crossPairs lists every pair (i, n1+j) for i < n1, j < n2, row-major.
func crossPairs(n1, n2 int) []core.Edge {
	out := make([]core.Edge, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			out = append(out, core.Edge{From: i, To: n1 + j})
		}
	}

	return out
}

// bipartition returns the sides [0,n1) and [n1,n1+n2).
func bipartition(n1, n2 int) core.Partition {
	return core.Partition{First: core.Range(n1), Second: shifted(n1, n2)}
}

func shifted(offset, n int) []int {
	out := core.Range(n)
	for i := range out {
		out[i] += offset
	}

	return out
}

// resample draws with draw until accept holds, at most cfg.maxResample times.
func resample[T any](cfg builderConfig, method, what string, draw func() T, accept func(T) bool) (T, error) {
	for i := 0; i < cfg.maxResample; i++ {
		v := draw()
		if accept(v) {
			return v, nil
		}
	}
	var zero T

	return zero, fmt.Errorf("%s: %s: %d draws rejected: %w", method, what, cfg.maxResample, ErrConstructFailed)
}
