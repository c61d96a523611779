// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// impl_bipartite.go: bipartite G(n1,n2,m) and G(n1,n2,p).
//
// Canonical model:
//   - Sides are [0,n1) and [n1,n1+n2); only cross pairs (i, n1+j) are
//     candidates. The Sample's Partition records both sides.
//   - Gnm variant: shuffle the n1·n2 cross pairs, keep the first m.
//   - Gnp variant: visit cross pairs row-major, keep each with probability p.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n1·n2 (else ErrParamOutOfRange); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//
// Randomized forms: n1 uniform in [1,n), n2 = n-n1; then m uniform in
// [1, n1·n2] or p drawn as in RandomGnp.
//
// Complexity: O(n1·n2).

package builder

import (
	"fmt"
)

// BipartiteGnm returns a Constructor for a bipartite graph with m cross edges.
func BipartiteGnm(n1, n2, m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkSides(methodBipartiteGnm, n1, n2); err != nil {
			return err
		}
		if m < 0 || m > n1*n2 {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodBipartiteGnm, m, n1*n2, ErrParamOutOfRange)
		}
		if err := cfg.requireRand(methodBipartiteGnm); err != nil {
			return err
		}

		return stageBipartiteGnm(d, cfg, n1, n2, m)
	}
}

// RandomBipartiteGnm returns a Constructor that draws (n1, m) for n total vertices.
func RandomBipartiteGnm(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodBipartiteGnm, n, MinBipartiteNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodBipartiteGnm); err != nil {
			return err
		}
		n1 := cfg.rng.Intn(n-1) + 1
		n2 := n - n1
		m := cfg.rng.Intn(n1*n2) + 1

		return stageBipartiteGnm(d, cfg, n1, n2, m)
	}
}

func stageBipartiteGnm(d *draft, cfg builderConfig, n1, n2, m int) error {
	d.start(FamilyBipartiteGnm, n1+n2)
	d.partition = bipartition(n1, n2)
	d.paramInt("n1", n1)
	d.paramInt("n2", n2)
	d.paramInt("m", m)

	pairs := crossPairs(n1, n2)
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	for _, e := range pairs[:m] {
		if err := d.edge(methodBipartiteGnm, e.From, e.To); err != nil {
			return err
		}
	}

	return nil
}

// BipartiteGnp returns a Constructor for a bipartite graph with cross-edge probability p.
func BipartiteGnp(n1, n2 int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkSides(methodBipartiteGnp, n1, n2); err != nil {
			return err
		}
		if err := checkProbability(methodBipartiteGnp, p); err != nil {
			return err
		}
		if err := cfg.requireRand(methodBipartiteGnp); err != nil {
			return err
		}

		return stageBipartiteGnp(d, cfg, n1, n2, p)
	}
}

// RandomBipartiteGnp returns a Constructor that draws (n1, p) for n total vertices.
func RandomBipartiteGnp(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := checkMin(methodBipartiteGnp, n, MinBipartiteNodes); err != nil {
			return err
		}
		if err := cfg.requireRand(methodBipartiteGnp); err != nil {
			return err
		}
		n1 := cfg.rng.Intn(n-1) + 1
		p, err := drawProbability(cfg, methodBipartiteGnp)
		if err != nil {
			return err
		}

		return stageBipartiteGnp(d, cfg, n1, n-n1, p)
	}
}

func stageBipartiteGnp(d *draft, cfg builderConfig, n1, n2 int, p float64) error {
	d.start(FamilyBipartiteGnp, n1+n2)
	d.partition = bipartition(n1, n2)
	d.paramInt("n1", n1)
	d.paramInt("n2", n2)
	d.paramFloat("p", p)
	for _, e := range crossPairs(n1, n2) {
		if cfg.rng.Float64() < p {
			if err := d.edge(methodBipartiteGnp, e.From, e.To); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkSides(method string, n1, n2 int) error {
	if n1 < 1 || n2 < 1 {
		return fmt.Errorf("%s: n1=%d, n2=%d: each side needs ≥ 1 vertex: %w", method, n1, n2, ErrTooFewVertices)
	}

	return nil
}
