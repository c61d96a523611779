// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before a constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// The RNG is consumed, so sharing it across calls chains their streams.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxResample bounds how many times a degenerate draw (p = 0, m0 = 1,
// an edgeless scale-free attachment round, a repeated attachment target) is
// redrawn before the constructor gives up with ErrConstructFailed.
// Panics if limit < 1.
func WithMaxResample(limit int) BuilderOption {
	if limit < 1 {
		panic("builder: WithMaxResample(limit<1)")
	}

	return func(c *builderConfig) {
		c.maxResample = limit
	}
}
