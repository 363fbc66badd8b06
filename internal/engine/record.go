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
	"sort"

	"github.com/wedelin-solver/wedelin/internal/matrix"
)

// scoredColumn pairs a reduced cost with the column it was computed
// for. Sorting a slice of these is the core ranking step of the
// per-row update.
type scoredColumn struct {
	score float64
	col   int
}

// clampIndex clamps idx into [0, n-1], the range of valid indices into
// a length-n slice. Used where a rank boundary (b_k-1 or b_k) may fall
// outside the row's actual nonzero-column count.
func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// sortScoredColumns sorts r ascending by score, breaking ties on
// column index so that runs are reproducible across platforms (the
// source this is grounded on, heuristic-classic.cpp, leaves the tie
// break unspecified).
func sortScoredColumns(r []scoredColumn) {
	sort.Slice(r, func(i, j int) bool {
		if r[i].score != r[j].score {
			return r[i].score < r[j].score
		}
		return r[i].col < r[j].col
	})
}

// ConstraintRecord holds the per-row scratch state described in the
// data model: the index set of columns present in the row at
// construction time, the subset of those with a negative coefficient
// (signed variant only), and the reusable (score, column) working
// array.
type ConstraintRecord struct {
	row int
	i   []int // I: column indices with A(row,j) != 0 at construction
	c   []int // C: subset of I with A(row,j) < 0 (signed variant only)
	cPos []int // index into i/r for each entry of c, parallel to c

	r []scoredColumn // reused across calls to update

	// equality variant bound
	bEquality int
	// signed variant bounds
	lo, hi float64
}

// newEqualityConstraintRecord scans row k of a for nonzero entries and
// builds the record for the equality variant. A row whose bk exceeds
// its nonzero column count is accepted here: it can never be
// satisfied, which updateEquality and RowFeasible handle as perpetual
// infeasibility rather than a construction-time error.
func newEqualityConstraintRecord(row int, a *matrix.IntMatrix, bk int) (*ConstraintRecord, error) {
	if bk < 0 {
		return nil, fmt.Errorf("%w: row %d has b_k=%d, must be non-negative", ErrShapeMismatch, row, bk)
	}
	cr := &ConstraintRecord{row: row, bEquality: bk}
	for j := 0; j < a.Cols(); j++ {
		if a.At(row, j) != 0 {
			cr.i = append(cr.i, j)
			cr.r = append(cr.r, scoredColumn{})
		}
	}
	return cr, nil
}

// newSignedConstraintRecord scans row k of a for nonzero entries and
// builds the record for the signed variant, additionally recording
// which columns carry a negative coefficient.
func newSignedConstraintRecord(row int, a *matrix.IntMatrix, lo, hi float64) (*ConstraintRecord, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: row %d has lo=%g > hi=%g", ErrShapeMismatch, row, lo, hi)
	}
	cr := &ConstraintRecord{row: row, lo: lo, hi: hi}
	for idx := 0; idx < a.Cols(); idx++ {
		v := a.At(row, idx)
		if v == 0 {
			continue
		}
		cr.i = append(cr.i, idx)
		cr.r = append(cr.r, scoredColumn{})
		if v < 0 {
			cr.c = append(cr.c, idx)
			cr.cPos = append(cr.cPos, len(cr.i)-1)
		}
	}
	if len(cr.i) < 2 {
		return nil, fmt.Errorf("%w: row %d has %d nonzero columns, need at least 2", ErrShapeMismatch, row, len(cr.i))
	}
	return cr, nil
}

// computeReducedCosts fills r with the reduced cost of every column in
// I, using the current A, c, P and pi. It assumes P's row-decay
// (theta scaling) has already been applied by the caller.
func (cr *ConstraintRecord) computeReducedCosts(a *matrix.IntMatrix, c matrix.RealVector, p *matrix.RealMatrix, pi matrix.RealVector) {
	for idx, j := range cr.i {
		sumAPi := a.ColumnDotReal(j, pi)
		sumAPP := matrix.ColumnPenaltyDot(a, p, j)
		cr.r[idx] = scoredColumn{score: c[j] - sumAPi - sumAPP, col: j}
	}
}

// updateEquality performs the equality variant's row update: decay P's
// row, recompute reduced costs, rank them, update the dual price and
// penalty, and assign x for this row's columns.
func (cr *ConstraintRecord) updateEquality(
	a *matrix.IntMatrix, c matrix.RealVector, p *matrix.RealMatrix, pi matrix.RealVector, x []bool,
	kappa, ell, theta float64, halvedDualUpdate bool,
) {
	p.ScaleRow(cr.row, theta)
	cr.computeReducedCosts(a, c, p, pi)
	sortScoredColumns(cr.r)

	bk := cr.bEquality
	n := len(cr.r)
	var rPlus, rMinus float64
	if n > 0 {
		rPlus = cr.r[clampIndex(bk-1, n)].score
		rMinus = cr.r[clampIndex(bk, n)].score
	}

	if halvedDualUpdate {
		pi[cr.row] += (rPlus + rMinus) / 2.0
	} else {
		pi[cr.row] += rPlus + rMinus/2.0
	}

	delta := (kappa/(1-kappa))*(rPlus-rMinus) + ell

	for idx, sc := range cr.r {
		j := sc.col
		if idx < bk {
			x[j] = true
			p.Add(cr.row, j, -delta)
		} else {
			x[j] = false
			p.Add(cr.row, j, delta)
		}
	}
}

// updateSigned performs the signed variant's row update: the
// variable-negation trick for columns with a negative coefficient,
// the shifted-bound interval split, the top-two selection, and the
// clean-up that reverses the negation on A and P.
func (cr *ConstraintRecord) updateSigned(
	a *matrix.IntMatrix, c matrix.RealVector, p *matrix.RealMatrix, pi matrix.RealVector, x []bool,
	kappa, ell, theta float64,
) error {
	p.ScaleRow(cr.row, theta)
	cr.computeReducedCosts(a, c, p, pi)

	lo, hi := cr.lo, cr.hi
	if len(cr.c) > 0 {
		var shift float64
		for k, j := range cr.c {
			idx := cr.cPos[k]
			cr.r[idx].score = -cr.r[idx].score
			a.Negate(cr.row, j)
			p.Negate(cr.row, j)
			shift += float64(a.At(cr.row, j)) // now positive, u(j) = 1
		}
		lo += shift
		hi += shift
	}

	sortScoredColumns(cr.r)

	inside := make([]scoredColumn, 0, len(cr.r))
	outside := make([]scoredColumn, 0, len(cr.r))
	for _, sc := range cr.r {
		if sc.score >= lo && sc.score <= hi {
			inside = append(inside, sc)
		} else {
			outside = append(outside, sc)
		}
	}

	if len(inside) < 2 {
		cr.undoNegation(a, p)
		return fmt.Errorf("%w: row %d has %d reduced costs inside [%g,%g], need at least 2",
			ErrDegenerateRow, cr.row, len(inside), lo, hi)
	}

	max1 := inside[len(inside)-1]
	max2 := inside[len(inside)-2]

	pi[cr.row] += (max1.score + max2.score) / 2.0
	delta := (kappa/(1-kappa))*(max1.score-max2.score) + ell

	for _, sc := range inside {
		x[sc.col] = true
		p.Add(cr.row, sc.col, -delta)
	}
	for _, sc := range outside {
		x[sc.col] = false
		p.Add(cr.row, sc.col, delta)
	}

	cr.undoNegation(a, p)
	for _, j := range cr.c {
		x[j] = !x[j]
	}
	return nil
}

// undoNegation reverses the in-place sign flips updateSigned applies
// to A and P for columns in C, restoring the engine-level invariant
// that A's sign pattern equals the input pattern at every step
// boundary.
func (cr *ConstraintRecord) undoNegation(a *matrix.IntMatrix, p *matrix.RealMatrix) {
	for _, j := range cr.c {
		a.Negate(cr.row, j)
		p.Negate(cr.row, j)
	}
}
