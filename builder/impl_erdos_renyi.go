// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_erdos_renyi.go: G(n,m) and G(n,p) random graphs.
//
// Canonical models:
//   - G(n,m): shuffle the C(n,2) candidate pairs, keep the first m.
//     Edge emission order is the shuffled order.
//   - G(n,p): visit candidate pairs lexicographically, keep each
//     independently when rng.Float64() < p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n(n-1)/2 (else ErrParamOutOfRange); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil, even for degenerate m/p (else ErrNeedRandSource).
//
// Randomized forms (family registry):
//   - RandomGnm: m uniform in [1, n(n-1)/2]; m = 0 when n = 1.
//   - RandomGnp: p uniform in [0,1), redrawn while 0.
//
// Complexity: O(n²) time and space for the candidate list / trials.

package builder

import (
	"fmt"
)

// Gnm returns a Constructor for a uniform graph with exactly m edges.
func Gnm(n, m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodGnm, n, MinGnmNodes); err != nil {
			return err
		}
		if m < 0 || m > maxEdges(n) {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodGnm, m, maxEdges(n), ErrParamOutOfRange)
		}
		if err := cfg.requireRand(methodGnm); err != nil {
			return err
		}

		return stageGnm(d, cfg, n, m)
	}
}

// RandomGnm returns a Constructor that first draws m, then builds G(n,m).
func RandomGnm(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodGnm, n, MinGnmNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodGnm); err != nil {
			return err
		}
		m := 0
		if limit := maxEdges(n); limit > 0 {
			m = cfg.rng.Intn(limit) + 1
		}

		return stageGnm(d, cfg, n, m)
	}
}

func stageGnm(d *draft, cfg builderConfig, n, m int) error {
	d.start(FamilyGnm, n)
	d.paramInt("m", m)

	pairs := candidatePairs(n)
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	for _, e := range pairs[:m] {
		if err := d.edge(methodGnm, e.From, e.To); err != nil {
			return err
		}
	}

	return nil
}

// Gnp returns a Constructor for a graph where each pair is present with probability p.
func Gnp(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodGnp, n, MinGnpNodes); err != nil {
			return err
		}
		if err := checkProbability(methodGnp, p); err != nil {
			return err
		}
		if err := cfg.requireRand(methodGnp); err != nil {
			return err
		}

		return stageGnp(d, cfg, n, p)
	}
}

// RandomGnp returns a Constructor that first draws p ∈ (0,1), then builds G(n,p).
func RandomGnp(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodGnp, n, MinGnpNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodGnp); err != nil {
			return err
		}
		p, err := drawProbability(cfg, methodGnp)
		if err != nil {
			return err
		}

		return stageGnp(d, cfg, n, p)
	}
}

func stageGnp(d *draft, cfg builderConfig, n int, p float64) error {
	d.start(FamilyGnp, n)
	d.paramFloat("p", p)
	for _, e := range candidatePairs(n) {
		if cfg.rng.Float64() < p {
			if err := d.edge(methodGnp, e.From, e.To); err != nil {
				return err
			}
		}
	}

	return nil
}

// drawProbability samples p uniformly from (0,1), rejecting 0.
func drawProbability(cfg builderConfig, method string) (float64, error) {
	return resample(cfg, method, "p",
		cfg.rng.Float64,
		func(p float64) bool { return p > 0 },
	)
}
