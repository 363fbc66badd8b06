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

package exact

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSolveAndBruteAgree_SelectTwoOfThree(t *testing.T) {
	p := Problem{
		M: 1, N: 3,
		A:  []int8{1, 1, 1},
		Lo: []float64{2},
		Hi: []float64{2},
		C:  []float64{-3, -2, -1},
	}

	x1, obj1, err := Solve(p)
	assert.NilError(t, err)
	x2, obj2, err := Brute(p)
	assert.NilError(t, err)

	assert.Equal(t, obj1, obj2)
	assert.DeepEqual(t, x1, x2)
	assert.DeepEqual(t, x1, []bool{true, true, false})
}

func TestSolveAndBrute_Infeasible(t *testing.T) {
	p := Problem{
		M: 1, N: 2,
		A:  []int8{1, 1},
		Lo: []float64{3},
		Hi: []float64{3},
		C:  []float64{-1, -1},
	}

	_, _, err := Solve(p)
	assert.Assert(t, errors.Is(err, ErrInfeasible))

	_, _, err = Brute(p)
	assert.Assert(t, errors.Is(err, ErrInfeasible))
}

func TestBrute_RejectsTooManyVariables(t *testing.T) {
	p := Problem{M: 0, N: MaxBruteForceVariables + 1}
	_, _, err := Brute(p)
	assert.ErrorContains(t, err, "at most")
}

func TestNode_Assignment(t *testing.T) {
	root := &Node{Kind: Root}
	a := &Node{Kind: Fix1, Parent: root, J: 0}
	b := &Node{Kind: Fix0, Parent: a, J: 1}

	got := b.Assignment()
	assert.Equal(t, got[0], true)
	assert.Equal(t, got[1], false)
	assert.Equal(t, b.Depth(), 2)
}
