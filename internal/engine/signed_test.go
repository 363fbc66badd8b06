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
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewSignedEngine_RejectsBadParameters(t *testing.T) {
	_, err := NewSignedEngine(1, 2, []int8{1, -1}, []float64{0}, []float64{1}, []float64{1, 1}, 1.0, 0, 0.5)
	assert.Assert(t, errors.Is(err, ErrInvalidParameter))
}

func TestNewSignedEngine_RejectsLoGreaterThanHi(t *testing.T) {
	_, err := NewSignedEngine(1, 2, []int8{1, -1}, []float64{2}, []float64{0}, []float64{1, 1}, 0.5, 0, 0.5)
	assert.Assert(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewSignedEngine_RejectsTooFewNonzeroColumns(t *testing.T) {
	_, err := NewSignedEngine(1, 2, []int8{1, 0}, []float64{0}, []float64{1}, []float64{1, 1}, 0.5, 0, 0.5)
	assert.Assert(t, errors.Is(err, ErrShapeMismatch))
}

// TestSignedEngine_TernaryRowWithNegativeCoefficient exercises the
// variable-negation trick directly: row has one negative coefficient,
// and the greedy seed already lands inside the interval, which is the
// state Step's update predicate actually fires on.
func TestSignedEngine_TernaryRowWithNegativeCoefficient(t *testing.T) {
	a := []int8{1, -1, 1}
	lo := []float64{0}
	hi := []float64{1}
	c := []float64{1, 1, 1}

	e, err := NewSignedEngine(1, 3, a, lo, hi, c, 0.3, 0, 0.5)
	assert.NilError(t, err)
	assert.Assert(t, e.RowFeasible(0)) // greedy seed (all false) sums to 0, inside [0,1]

	_, stepErr := e.Step()
	assert.NilError(t, stepErr)
	assert.Assert(t, e.RowFeasible(0))

	// A's sign pattern must be restored after the update.
	assert.Equal(t, e.a.At(0, 1), int8(-1))
}

func TestSignedEngine_DegenerateRowReturnsError(t *testing.T) {
	// Greedy seed (all false) sums to 0, inside [0,0], so the update
	// fires; but both columns' reduced costs land at 1, outside [0,0],
	// leaving fewer than two inside.
	a := []int8{1, 1}
	lo := []float64{0}
	hi := []float64{0}
	c := []float64{1, 1}

	e, err := NewSignedEngine(1, 2, a, lo, hi, c, 0.3, 0, 0.5)
	assert.NilError(t, err)
	assert.Assert(t, e.RowFeasible(0))

	_, stepErr := e.Step()
	assert.Assert(t, errors.Is(stepErr, ErrDegenerateRow))
}

// TestSignedEngine_FeasibleMatchesAllRows covers a two-row instance
// where row 1's update (fired by its own feasible greedy seed) brings
// row 0 into feasibility through their shared column, converging on
// the first Step call.
func TestSignedEngine_FeasibleMatchesAllRows(t *testing.T) {
	a := []int8{1, 1, 0, 0, 0, 1, 1, -1}
	lo := []float64{1, -1}
	hi := []float64{2, 1}
	c := []float64{1, 1, 1, 1}

	e, err := NewSignedEngine(2, 4, a, lo, hi, c, 0.3, 0, 0.5)
	assert.NilError(t, err)

	feasible, stepErr := e.Step()
	assert.NilError(t, stepErr)

	assert.Assert(t, feasible)
	assert.Assert(t, e.RowFeasible(0))
	assert.Assert(t, e.RowFeasible(1))
	assert.DeepEqual(t, e.X(), []bool{false, true, true, true})
}
