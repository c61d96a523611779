// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_barabasi_albert.go: preferential-attachment graph and forest.
//
// Canonical models:
//   - Graph BA(n, m0, m): start from the complete graph on 0..m0-1; every
//     later vertex v attaches to m DISTINCT earlier vertices, each picked with
//     probability proportional to its current degree. Targets are drawn from
//     an endpoint pool (one entry per edge endpoint), duplicates redrawn.
//   - Forest BAF(n, t): vertices 0..t-1 are isolated roots; every later vertex
//     attaches to exactly one earlier vertex picked with probability
//     proportional to degree+1. The result has exactly t trees.
//
// Contract:
//   - Graph: n ≥ 6 for the randomized form; explicit form needs
//     2 ≤ m0 ≤ n and 1 ≤ m ≤ m0 (else ErrParamOutOfRange).
//   - Forest: 1 ≤ t ≤ n (else ErrParamOutOfRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Randomized forms:
//   - m0 uniform in [1, ⌊n/3⌋], redrawn while m0 = 1 (a single seed vertex
//     has degree 0 and cannot attract edges); m uniform in [1, m0].
//   - t uniform in [1, ⌊n/2⌋].
//
// Complexity: O(n·m) expected for the graph, O(n²) worst case for the forest.

package builder

import (
	"fmt"
)

// BarabasiAlbert returns a Constructor for BA(n, m0, m).
func BarabasiAlbert(n, m0, m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodBarabasiAlbert, n, 2); err != nil {
			return err
		}
		if m0 < 2 || m0 > n {
			return fmt.Errorf("%s: m0=%d not in [2,%d]: %w", methodBarabasiAlbert, m0, n, ErrParamOutOfRange)
		}
		if m < 1 || m > m0 {
			return fmt.Errorf("%s: m=%d not in [1,%d]: %w", methodBarabasiAlbert, m, m0, ErrParamOutOfRange)
		}
		if err := cfg.requireRand(methodBarabasiAlbert); err != nil {
			return err
		}

		return stageBarabasiAlbert(d, cfg, n, m0, m)
	}
}

// RandomBarabasiAlbert returns a Constructor that draws (m0, m) and builds BA(n, m0, m).
func RandomBarabasiAlbert(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodBarabasiAlbert, n, MinBarabasiAlbertNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodBarabasiAlbert); err != nil {
			return err
		}
		third := n / 3
		m0, err := resample(cfg, methodBarabasiAlbert, "m0",
			func() int { return cfg.rng.Intn(third) + 1 },
			func(v int) bool { return v != 1 },
		)
		if err != nil {
			return err
		}
		m := cfg.rng.Intn(m0) + 1

		return stageBarabasiAlbert(d, cfg, n, m0, m)
	}
}

func stageBarabasiAlbert(d *draft, cfg builderConfig, n, m0, m int) error {
	d.start(FamilyBarabasiAlbert, n)
	d.paramInt("m0", m0)
	d.paramInt("m", m)

	// pool holds one entry per edge endpoint: sampling it uniformly is
	// sampling vertices proportionally to degree.
	pool := make([]int, 0, 2*(maxEdges(m0)+(n-m0)*m))
	for _, e := range candidatePairs(m0) {
		if err := d.edge(methodBarabasiAlbert, e.From, e.To); err != nil {
			return err
		}
		pool = append(pool, e.From, e.To)
	}

	targets := make([]int, 0, m)
	chosen := make(map[int]struct{}, m)
	for v := m0; v < n; v++ {
		targets = targets[:0]
		clear(chosen)
		for draws := 0; len(targets) < m; draws++ {
			if draws >= cfg.maxResample*m {
				return fmt.Errorf("%s: vertex %d: %d distinct targets not found: %w",
					methodBarabasiAlbert, v, m, ErrConstructFailed)
			}
			u := pool[cfg.rng.Intn(len(pool))]
			if _, dup := chosen[u]; dup {
				continue
			}
			chosen[u] = struct{}{}
			targets = append(targets, u)
		}
		for _, u := range targets {
			if err := d.edge(methodBarabasiAlbert, v, u); err != nil {
				return err
			}
			pool = append(pool, v, u)
		}
	}

	return nil
}

// BarabasiAlbertForest returns a Constructor for a preferential-attachment forest of t trees.
func BarabasiAlbertForest(n, t int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodForest, n, 1); err != nil {
			return err
		}
		if t < 1 || t > n {
			return fmt.Errorf("%s: t=%d not in [1,%d]: %w", methodForest, t, n, ErrParamOutOfRange)
		}
		if err := cfg.requireRand(methodForest); err != nil {
			return err
		}

		return stageForest(d, cfg, n, t)
	}
}

// RandomBarabasiAlbertForest returns a Constructor that draws t ∈ [1, ⌊n/2⌋].
func RandomBarabasiAlbertForest(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodForest, n, MinForestNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodForest); err != nil {
			return err
		}
		t := cfg.rng.Intn(n/2) + 1

		return stageForest(d, cfg, n, t)
	}
}

func stageForest(d *draft, cfg builderConfig, n, t int) error {
	d.start(FamilyBarabasiAlbertForest, n)
	d.paramInt("t", t)

	deg := make([]int, n)
	weight := t // Σ (deg+1) over existing vertices
	for v := t; v < n; v++ {
		r := cfg.rng.Intn(weight)
		u := 0
		for ; u < v; u++ {
			r -= deg[u] + 1
			if r < 0 {
				break
			}
		}
		if err := d.edge(methodForest, v, u); err != nil {
			return err
		}
		deg[u]++
		deg[v]++
		weight += 3 // new vertex contributes deg+1 = 2, target gains 1
	}

	return nil
}
