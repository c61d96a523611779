// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w
//     ("Gnm: m=12 > max=10: builder: parameter out of range").
//   - Constructors never panic at runtime; only option constructors (WithX)
//     panic on meaningless inputs.
//
// Priority when several validations fail:
//
//	ErrTooFewVertices / ErrTooManyVertices → ErrParamOutOfRange /
//	ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.
package builder

import "errors"

// ErrTooFewVertices indicates n is below the minimum of the requested family.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyVertices indicates n exceeds an enumeration cap (see MaxExhaustiveNodes).
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrParamOutOfRange indicates a structural parameter (m, m0, t, n1, center)
// outside its admissible domain.
var ErrParamOutOfRange = errors.New("builder: parameter out of range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a bounded resampling loop was exhausted, or a
// nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownFamily indicates a family label that is not part of the closed set.
var ErrUnknownFamily = errors.New("builder: unknown family")
