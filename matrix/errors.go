// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Callers wrap with fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrGraphNil is returned when a nil *core.Graph is passed to a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
