/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package matrix is a small dense linear algebra substrate for the
// Wedelin heuristic engine: row-major integer/ternary matrices, a
// gonum-backed real matrix with in-place row scaling, and the vector
// helpers the per-row update needs. It is not a general-purpose
// numerical library; row-wise sweeps and row-wise scaling are the only
// access patterns that matter here, so the layout is optimized for
// those and nothing else.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IntMatrix is a row-major dense matrix of small integers. It is used
// for the constraint matrix A, whose entries are in {0, 1} (equality
// variant) or {-1, 0, 1} (signed variant).
type IntMatrix struct {
	rows, cols int
	data       []int8
}

// NewIntMatrix allocates a zeroed rows-by-cols IntMatrix.
func NewIntMatrix(rows, cols int) *IntMatrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return &IntMatrix{rows: rows, cols: cols, data: make([]int8, rows*cols)}
}

// NewIntMatrixFromRowMajor builds an IntMatrix from a flat row-major slice.
// It panics if len(data) != rows*cols, mirroring the shape checks the
// rest of this package performs at construction time.
func NewIntMatrixFromRowMajor(rows, cols int, data []int8) *IntMatrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: data has length %d, want %d", len(data), rows*cols))
	}
	m := &IntMatrix{rows: rows, cols: cols, data: make([]int8, rows*cols)}
	copy(m.data, data)
	return m
}

func (m *IntMatrix) Rows() int { return m.rows }
func (m *IntMatrix) Cols() int { return m.cols }

func (m *IntMatrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// At returns A(i, j).
func (m *IntMatrix) At(i, j int) int8 {
	return m.data[m.index(i, j)]
}

// Set assigns A(i, j) = v.
func (m *IntMatrix) Set(i, j int, v int8) {
	m.data[m.index(i, j)] = v
}

// Negate flips the sign of A(i, j) in place. Used by the signed
// engine's variable-negation trick, which must be fully reversible.
func (m *IntMatrix) Negate(i, j int) {
	idx := m.index(i, j)
	m.data[idx] = -m.data[idx]
}

// RowNonzero returns the nonzero column indices of row i, in ascending order.
func (m *IntMatrix) RowNonzero(i int) []int {
	cols := make([]int, 0, m.cols)
	for j := 0; j < m.cols; j++ {
		if m.At(i, j) != 0 {
			cols = append(cols, j)
		}
	}
	return cols
}

// MatrixVectorMultiply computes result = A*x for a 0/1 column vector x,
// writing into result (which must have length m.rows).
func (m *IntMatrix) MatrixVectorMultiply(x []int, result []int) {
	if len(x) != m.cols {
		panic(fmt.Sprintf("matrix: x has length %d, want %d", len(x), m.cols))
	}
	if len(result) != m.rows {
		panic(fmt.Sprintf("matrix: result has length %d, want %d", len(result), m.rows))
	}
	for i := 0; i < m.rows; i++ {
		sum := 0
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			if a := m.data[base+j]; a != 0 {
				sum += int(a) * x[j]
			}
		}
		result[i] = sum
	}
}

// ColumnDotInt computes sum_h A(h,j)*weights(h) for an integer weight
// vector (used for A(h,j)*x(h) style sums). weights must have length
// m.rows.
func (m *IntMatrix) ColumnDotInt(j int, weights []int) int {
	sum := 0
	for h := 0; h < m.rows; h++ {
		if a := m.data[h*m.cols+j]; a != 0 {
			sum += int(a) * weights[h]
		}
	}
	return sum
}

// ColumnDotReal computes sum_h A(h,j)*weights(h) for a real weight
// vector, e.g. the dual prices pi or a column of the penalty matrix P.
func (m *IntMatrix) ColumnDotReal(j int, weights []float64) float64 {
	var sum float64
	for h := 0; h < m.rows; h++ {
		if a := m.data[h*m.cols+j]; a != 0 {
			sum += float64(a) * weights[h]
		}
	}
	return sum
}

// IntVector is a thin named type over []int for integer vectors (b, the
// current A*x product) so call sites read like the spec's b, Ax.
type IntVector []int

// Equal reports whether two integer vectors are elementwise equal.
func (v IntVector) Equal(other IntVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// RealMatrix is a real-valued dense matrix, backed by gonum's mat.Dense,
// used for the penalty matrix P. It adds the in-place row scale the
// heuristic's decay step needs (P[k,:] *= theta).
type RealMatrix struct {
	dense *mat.Dense
}

// NewRealMatrix allocates a zeroed rows-by-cols RealMatrix.
func NewRealMatrix(rows, cols int) *RealMatrix {
	return &RealMatrix{dense: mat.NewDense(rows, cols, nil)}
}

func (m *RealMatrix) Rows() int { return m.dense.RawMatrix().Rows }
func (m *RealMatrix) Cols() int { return m.dense.RawMatrix().Cols }

// At returns P(i, j).
func (m *RealMatrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Set assigns P(i, j) = v.
func (m *RealMatrix) Set(i, j int, v float64) {
	m.dense.Set(i, j, v)
}

// Add applies P(i, j) += delta.
func (m *RealMatrix) Add(i, j int, delta float64) {
	m.dense.Set(i, j, m.dense.At(i, j)+delta)
}

// Negate flips the sign of P(i, j) in place, the real-matrix half of
// the signed engine's variable-negation trick.
func (m *RealMatrix) Negate(i, j int) {
	m.dense.Set(i, j, -m.dense.At(i, j))
}

// ScaleRow multiplies every entry of row k by theta, in place. This is
// the penalty-decay step applied once per row visit.
func (m *RealMatrix) ScaleRow(k int, theta float64) {
	row := m.dense.RawRowView(k)
	floats.Scale(theta, row)
}

// Column returns a freshly allocated copy of column j as a plain slice
// (e.g. to dot against a weight vector via ColumnDotReal on the owning
// IntMatrix). The per-row update does not use it; it reads P's column
// through ColumnPenaltyDot instead.
func (m *RealMatrix) Column(j int) []float64 {
	col := make([]float64, m.Rows())
	mat.Col(col, j, m.dense)
	return col
}

// ColumnPenaltyDot computes sum_h a(h,j)*p(h,j) for matching matrices a
// (the constraint matrix) and p (the penalty matrix). This is the
// "sum_app" term of the reduced-cost formula, which dots a column of A
// against the same column of P rather than against a plain vector.
func ColumnPenaltyDot(a *IntMatrix, p *RealMatrix, j int) float64 {
	var sum float64
	for h := 0; h < a.rows; h++ {
		if av := a.data[h*a.cols+j]; av != 0 {
			sum += float64(av) * p.At(h, j)
		}
	}
	return sum
}

// RealVector is a thin named type over []float64 for real vectors
// (c, pi) so call sites read like the spec's c, pi.
type RealVector []float64

// Equal reports whether two real vectors are elementwise equal using
// exact floating point comparison. It exists for test fixtures, not as
// part of the solving path (which never needs to compare c or pi for
// equality).
func (v RealVector) Equal(other RealVector) bool {
	return floats.Equal(v, other)
}
