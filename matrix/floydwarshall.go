// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - All-pairs hop distances (Floyd–Warshall) over an adjacency matrix.
//
// Contract:
//   - Square input; any non-zero off-diagonal entry is an edge of length 1.
//   - Unreachable pairs hold Inf; the diagonal is 0.
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity: O(n³) time, O(n²) space for the returned copy.

package matrix

import (
	"fmt"
	"math"
)

// Inf marks "no path" in a distance matrix. Half of MaxInt keeps Inf+Inf from overflowing.
const Inf = math.MaxInt / 2

const opFloydWarshall = "FloydWarshall"

// FloydWarshall returns the hop-distance matrix of adj. adj is not modified.
func FloydWarshall(adj *Dense) (*Dense, error) {
	if adj.r != adj.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, adj.r, adj.c, ErrNonSquare)
	}
	n := adj.r
	d := adj.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				d.data[i*n+j] = 0
			case d.data[i*n+j] != 0:
				d.data[i*n+j] = 1
			default:
				d.data[i*n+j] = Inf
			}
		}
	}

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			baseI := i * n
			ik := d.data[baseI+k]
			if ik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := ik + d.data[baseK+j]; cand < d.data[baseI+j] {
					d.data[baseI+j] = cand
				}
			}
		}
	}

	return d, nil
}
