// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_scale_free.go: ScaleFree(n), an attachment-by-trial scale-free graph.
//
// Canonical model:
//   - Vertices arrive in order 0..n-1. Arriving vertex v tests every earlier
//     vertex u in ascending order and connects to it when
//     degreeSum == 0 or rng.Intn(degreeSum) < deg(u). deg(u) is live within
//     a pass; degreeSum grows by twice the pass's new edges only after the
//     pass completes. If a pass adds nothing, it is repeated (bounded by
//     cfg.maxResample), so every vertex but the first ends with degree ≥ 1.
//   - Edges are emitted existing→new, i.e. (u, v) with u < v.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); cfg.rng non-nil (else ErrNeedRandSource).
//   - The result is connected.
//
// Complexity: O(n²) expected.

package builder

import (
	"fmt"
)

// ScaleFree returns a Constructor for an n-vertex scale-free graph.
func ScaleFree(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodScaleFree, n, MinScaleFreeNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodScaleFree); err != nil {
			return err
		}
		d.start(FamilyScaleFree, n)

		deg := make([]int, n)
		degreeSum := 0
		for v := 1; v < n; v++ {
			added := 0
			for pass := 0; added == 0; pass++ {
				if pass >= cfg.maxResample {
					return fmt.Errorf("%s: vertex %d never attached: %w", methodScaleFree, v, ErrConstructFailed)
				}
				for u := 0; u < v; u++ {
					if degreeSum != 0 && cfg.rng.Intn(degreeSum) >= deg[u] {
						continue
					}
					if err := d.edge(methodScaleFree, u, v); err != nil {
						return err
					}
					deg[u]++
					deg[v]++
					added++
				}
				degreeSum += 2 * added
			}
		}

		return nil
	}
}
