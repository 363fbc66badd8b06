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

package wedelin

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestEqualityProblem_ValidateRejectsBadShape(t *testing.T) {
	p := EqualityProblem{M: 1, N: 2, A: []int8{1}, B: []int{1}, C: []float64{1, 1}}
	assert.Assert(t, errors.Is(p.Validate(), ErrInvalidInput))
}

func TestEqualityProblem_ValidateRejectsNonBinaryEntry(t *testing.T) {
	p := EqualityProblem{M: 1, N: 1, A: []int8{2}, B: []int{1}, C: []float64{1}}
	assert.Assert(t, errors.Is(p.Validate(), ErrInvalidInput))
}

func TestEqualityProblem_ValidateAcceptsWellFormedInstance(t *testing.T) {
	p := EqualityProblem{M: 1, N: 2, A: []int8{1, 0}, B: []int{1}, C: []float64{1, 1}}
	assert.NilError(t, p.Validate())
}

func TestSignedProblem_ValidateRejectsInvertedBounds(t *testing.T) {
	p := SignedProblem{M: 1, N: 1, A: []int8{1}, Lo: []float64{2}, Hi: []float64{1}, C: []float64{1}}
	assert.Assert(t, errors.Is(p.Validate(), ErrInvalidInput))
}

func TestSignedProblem_ValidateRejectsOutOfRangeEntry(t *testing.T) {
	p := SignedProblem{M: 1, N: 1, A: []int8{2}, Lo: []float64{0}, Hi: []float64{1}, C: []float64{1}}
	assert.Assert(t, errors.Is(p.Validate(), ErrInvalidInput))
}

func TestSignedProblem_ValidateAcceptsWellFormedInstance(t *testing.T) {
	p := SignedProblem{M: 1, N: 3, A: []int8{1, -1, 1}, Lo: []float64{0}, Hi: []float64{1}, C: []float64{1, 1, 1}}
	assert.NilError(t, p.Validate())
}

func TestResult_Objective(t *testing.T) {
	r := Result{X: []bool{true, false, true}}
	c := []float64{2, 5, 3}
	assert.Equal(t, r.Objective(c), 5.0)
}
