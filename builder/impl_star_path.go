// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_star_path.go: Star and Path with randomized labelings.
//
// Contract:
//   - Star: n ≥ 4 (else ErrTooFewVertices). The center is uniform in [0,n)
//     (StarAt fixes it). Spokes are emitted center→leaf for leaves in
//     ascending order.
//   - Path: n ≥ 2 (else ErrTooFewVertices). A uniform permutation π of
//     0..n-1 defines the path π0-π1-...-π(n-1); edges are emitted along it.
//   - Both require cfg.rng (StarAt does not).
//
// Complexity: O(n).

package builder

import (
	"fmt"
)

// Star returns a Constructor for a star whose center is drawn uniformly.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodStar); err != nil {
			return err
		}

		return stageStar(d, n, cfg.rng.Intn(n))
	}
}

// StarAt returns a Constructor for a star centered on vertex center.
func StarAt(n, center int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d not in [0,%d): %w", methodStar, center, n, ErrParamOutOfRange)
		}

		return stageStar(d, n, center)
	}
}

func stageStar(d *draft, n, center int) error {
	d.start(FamilyStar, n)
	d.paramInt("center", center)
	for leaf := 0; leaf < n; leaf++ {
		if leaf == center {
			continue
		}
		if err := d.edge(methodStar, center, leaf); err != nil {
			return err
		}
	}

	return nil
}

// Path returns a Constructor for a path visiting 0..n-1 in random order.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodPath); err != nil {
			return err
		}
		d.start(FamilyPath, n)
		order := cfg.rng.Perm(n)
		for i := 0; i+1 < n; i++ {
			if err := d.edge(methodPath, order[i], order[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
