// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense is a row-major integer matrix stored in one flat slice.
//   - Corpus graphs are small and unweighted, so int entries cover adjacency
//     counts, walk counts and hop distances exactly.
//
// Contract:
//   - Shapes are r×c with r,c ≥ 0; a 0×0 matrix is valid (empty graph).
//   - At/Set return ErrOutOfRange instead of panicking.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of int values.
type Dense struct {
	r, c int   // rows and columns
	data []int // len == r*c
}

// NewDense allocates an r×c zero matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col, v int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]int, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Trace sums the main diagonal of a square matrix.
func (m *Dense) Trace() (int, error) {
	if m.r != m.c {
		return 0, fmt.Errorf("Trace %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	sum := 0
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Mul returns a×b. Loop order is i → k → j.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul %dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]int, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// String renders rows as space-separated values, one row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
