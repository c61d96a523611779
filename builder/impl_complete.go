// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_complete.go: Empty(n) and Complete(n), the two deterministic families.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - No RNG required; any supplied RNG is left untouched.
//   - Complete emits pairs (i,j), i<j, in lexicographic order.
//
// Complexity:
//   - Empty: O(n). Complete: O(n²).

package builder

// Empty returns a Constructor for n isolated vertices.
func Empty(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodEmpty, n, MinEmptyNodes); err != nil {
			return err
		}
		d.start(FamilyEmpty, n)

		return nil
	}
}

// Complete returns a Constructor for K_n, the complement of Empty(n).
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		d.start(FamilyComplete, n)
		for _, e := range candidatePairs(n) {
			if err := d.edge(methodComplete, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
