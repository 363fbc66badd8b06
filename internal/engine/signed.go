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

// SignedEngine is the interval-bounded, ternary-coefficient (A in
// {-1,0,1}^(m x n)) counterpart of EqualityEngine. Negative
// coefficients are handled per-row by ConstraintRecord's
// variable-negation trick.
type SignedEngine struct {
	m, n int

	a  *matrix.IntMatrix
	lo []float64
	hi []float64
	c  matrix.RealVector
	x  []bool
	pi matrix.RealVector
	p  *matrix.RealMatrix

	constraints []*ConstraintRecord

	kappa, ell, theta float64
}

// NewSignedEngine validates the problem shape and parameters,
// initializes pi <- 0, P <- 0 and the greedy seed x(j) = 1 iff
// c(j) <= 0, and builds the per-row ConstraintRecords.
func NewSignedEngine(m, n int, a []int8, lo, hi []float64, c []float64, kappa, ell, theta float64) (*SignedEngine, error) {
	if err := validateParameters(kappa, ell, theta); err != nil {
		return nil, err
	}
	if len(a) != m*n {
		return nil, fmt.Errorf("%w: A has length %d, want %d (m*n)", ErrShapeMismatch, len(a), m*n)
	}
	if len(lo) != m || len(hi) != m {
		return nil, fmt.Errorf("%w: lo/hi have length %d/%d, want %d (m)", ErrShapeMismatch, len(lo), len(hi), m)
	}
	if len(c) != n {
		return nil, fmt.Errorf("%w: c has length %d, want %d (n)", ErrShapeMismatch, len(c), n)
	}

	e := &SignedEngine{
		m: m, n: n,
		a:     matrix.NewIntMatrixFromRowMajor(m, n, a),
		lo:    append([]float64(nil), lo...),
		hi:    append([]float64(nil), hi...),
		c:     append(matrix.RealVector(nil), c...),
		x:     make([]bool, n),
		pi:    make(matrix.RealVector, m),
		p:     matrix.NewRealMatrix(m, n),
		kappa: kappa, ell: ell, theta: theta,
	}

	for j := 0; j < n; j++ {
		e.x[j] = c[j] <= 0
	}

	e.constraints = make([]*ConstraintRecord, m)
	for k := 0; k < m; k++ {
		cr, err := newSignedConstraintRecord(k, e.a, e.lo[k], e.hi[k])
		if err != nil {
			return nil, err
		}
		e.constraints[k] = cr
	}

	return e, nil
}

// rowSum computes sum_j A(k,j)*x(j) for the current assignment.
func (e *SignedEngine) rowSum(k int) int {
	sum := 0
	for j := 0; j < e.n; j++ {
		if e.x[j] {
			sum += int(e.a.At(k, j))
		}
	}
	return sum
}

// RowFeasible reports whether row k is currently inside its interval:
// lo(k) <= sum_j A(k,j)*x(j) <= hi(k). Note the source's update
// predicate (see Step) fires on rows for which this is true, the
// mirror image of the equality variant's predicate; this is the
// polarity spec.md documents rather than silently corrects.
func (e *SignedEngine) RowFeasible(k int) bool {
	sum := float64(e.rowSum(k))
	return e.lo[k] <= sum && sum <= e.hi[k]
}

// Feasible reports whether every row is inside its interval. This is
// the global feasibility predicate the source never provides (its
// signed-variant step() returns false unconditionally); it is the
// natural analogue of EqualityEngine.Feasible used by Step below.
func (e *SignedEngine) Feasible() bool {
	for k := 0; k < e.m; k++ {
		if !e.RowFeasible(k) {
			return false
		}
	}
	return true
}

// Step sweeps rows in strictly ascending index order, updating every
// row that is currently inside its interval (the source's
// update predicate, reproduced verbatim), then returns Feasible().
// A row update can fail with ErrDegenerateRow if fewer than two of its
// reduced costs land inside the shifted bound interval; Step returns
// that error immediately, leaving later rows in the sweep untouched.
func (e *SignedEngine) Step() (bool, error) {
	for k := 0; k < e.m; k++ {
		if e.RowFeasible(k) {
			if err := e.constraints[k].updateSigned(e.a, e.c, e.p, e.pi, e.x, e.kappa, e.ell, e.theta); err != nil {
				return false, err
			}
		}
	}
	return e.Feasible(), nil
}

// X returns a copy of the current candidate assignment.
func (e *SignedEngine) X() []bool {
	return append([]bool(nil), e.x...)
}
