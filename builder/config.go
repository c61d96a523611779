// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng         = nil               (stochastic families fail with ErrNeedRandSource)
//   - maxResample = DefaultMaxResample

package builder

import (
	"math/rand"
)

// DefaultMaxResample is the default bound on degenerate-draw retries.
const DefaultMaxResample = 1000

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng         *rand.Rand // nil means "no randomness available"
	maxResample int        // > 0
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxResample: DefaultMaxResample,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// requireRand returns ErrNeedRandSource (with method context) when cfg has no RNG.
func (c builderConfig) requireRand(method string) error {
	if c.rng == nil {
		return wrapf(method, "no rng", ErrNeedRandSource)
	}

	return nil
}
