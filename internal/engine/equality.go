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

package engine

import (
	"fmt"

	"github.com/wedelin-solver/wedelin/internal/matrix"
)

// EqualityEngine owns the dense state (A, b, c, x, pi, P) and the
// per-row ConstraintRecords for the equality variant (single-row
// equality constraints, A in {0,1}^(m x n)).
type EqualityEngine struct {
	m, n int

	a  *matrix.IntMatrix
	b  matrix.IntVector
	c  matrix.RealVector
	x  []bool
	pi matrix.RealVector
	p  *matrix.RealMatrix

	constraints []*ConstraintRecord

	kappa, ell, theta float64
	halvedDualUpdate  bool
}

// NewEqualityEngine validates the problem shape and parameters,
// initializes pi <- 0, P <- 0 and the greedy seed x(j) = 1 iff
// c(j) <= 0, and builds the per-row ConstraintRecords.
func NewEqualityEngine(m, n int, a []int8, b []int, c []float64, kappa, ell, theta float64, halvedDualUpdate bool) (*EqualityEngine, error) {
	if err := validateParameters(kappa, ell, theta); err != nil {
		return nil, err
	}
	if len(a) != m*n {
		return nil, fmt.Errorf("%w: A has length %d, want %d (m*n)", ErrShapeMismatch, len(a), m*n)
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: b has length %d, want %d (m)", ErrShapeMismatch, len(b), m)
	}
	if len(c) != n {
		return nil, fmt.Errorf("%w: c has length %d, want %d (n)", ErrShapeMismatch, len(c), n)
	}

	e := &EqualityEngine{
		m: m, n: n,
		a:     matrix.NewIntMatrixFromRowMajor(m, n, a),
		b:     append(matrix.IntVector(nil), b...),
		c:     append(matrix.RealVector(nil), c...),
		x:     make([]bool, n),
		pi:    make(matrix.RealVector, m),
		p:     matrix.NewRealMatrix(m, n),
		kappa: kappa, ell: ell, theta: theta,
		halvedDualUpdate: halvedDualUpdate,
	}

	for j := 0; j < n; j++ {
		e.x[j] = c[j] <= 0
	}

	e.constraints = make([]*ConstraintRecord, m)
	for k := 0; k < m; k++ {
		cr, err := newEqualityConstraintRecord(k, e.a, e.b[k])
		if err != nil {
			return nil, err
		}
		e.constraints[k] = cr
	}

	return e, nil
}

// RowFeasible reports whether row k currently satisfies its equality:
// sum_j A(k,j)*x(j) == b(k).
func (e *EqualityEngine) RowFeasible(k int) bool {
	sum := 0
	for j := 0; j < e.n; j++ {
		if e.x[j] {
			sum += int(e.a.At(k, j))
		}
	}
	return sum == e.b[k]
}

// Feasible reports whether A*x == b elementwise.
func (e *EqualityEngine) Feasible() bool {
	ax := make([]int, e.m)
	xi := make([]int, e.n)
	for j, v := range e.x {
		if v {
			xi[j] = 1
		}
	}
	e.a.MatrixVectorMultiply(xi, ax)
	return matrix.IntVector(ax).Equal(e.b)
}

// Step sweeps rows in strictly ascending index order, updating every
// row that is not currently feasible, then returns Feasible(). Later
// rows in the same sweep observe earlier rows' effects; this ordering
// is part of the observable behavior and must not be parallelized.
func (e *EqualityEngine) Step() bool {
	for k := 0; k < e.m; k++ {
		if !e.RowFeasible(k) {
			e.constraints[k].updateEquality(e.a, e.c, e.p, e.pi, e.x, e.kappa, e.ell, e.theta, e.halvedDualUpdate)
		}
	}
	return e.Feasible()
}

// X returns a copy of the current candidate assignment.
func (e *EqualityEngine) X() []bool {
	return append([]bool(nil), e.x...)
}
