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

import "math/rand"

// GenerateAssignmentProblem builds the bipartite assignment instance
// of size workers to size tasks: size row constraints ("each
// worker does exactly one task") plus size column constraints ("each
// task gets exactly one worker"), variable x(i,j) (worker i, task j)
// at index i*size+j, every row target b_k = 1. Costs are random in
// [1,10). Grounded on
// original_source/tests/assignment_problem.cpp's constraint shape and
// the teacher's data.go:MakeRandomInstance seeded-rand idiom.
func GenerateAssignmentProblem(size int, seed int64) EqualityProblem {
	if size <= 0 {
		return EqualityProblem{}
	}
	gen := rand.New(rand.NewSource(seed))

	m := 2 * size
	n := size * size
	a := make([]int8, m*n)
	b := make([]int, m)
	c := make([]float64, n)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := i*size + j
			a[i*n+v] = 1        // row constraint i: worker i does exactly one task
			a[(size+j)*n+v] = 1 // column constraint j: task j gets exactly one worker
		}
	}
	for k := 0; k < m; k++ {
		b[k] = 1
	}
	for j := 0; j < n; j++ {
		c[j] = 1 + 9*gen.Float64()
	}

	return EqualityProblem{M: m, N: n, A: a, B: b, C: c}
}

// GenerateNQueensProblem builds the n-queens instance for an size x
// size board: size row constraints and size column constraints (each
// exactly one queen), plus one at-most-one constraint per diagonal
// with at least two cells, variable x(i,j) (row i, column j) at index
// i*size+j. Costs are random in [1,10). The row/column constraint
// shape is grounded on
// original_source/tests/n-queens-problem.cpp's NQueenProblem; that
// source leaves the diagonal constraints commented out (dead code),
// which this generator completes — see SPEC_FULL.md, SUPPLEMENTED
// FEATURES.
func GenerateNQueensProblem(size int, seed int64) SignedProblem {
	if size < 3 {
		return SignedProblem{}
	}
	gen := rand.New(rand.NewSource(seed))

	n := size * size
	var a []int8
	var lo, hi []float64

	appendRow := func(cells []int, l, h float64) {
		row := make([]int8, n)
		for _, cell := range cells {
			row[cell] = 1
		}
		a = append(a, row...)
		lo = append(lo, l)
		hi = append(hi, h)
	}

	for i := 0; i < size; i++ {
		cells := make([]int, size)
		for j := 0; j < size; j++ {
			cells[j] = i*size + j
		}
		appendRow(cells, 1, 1)
	}
	for j := 0; j < size; j++ {
		cells := make([]int, size)
		for i := 0; i < size; i++ {
			cells[i] = i*size + j
		}
		appendRow(cells, 1, 1)
	}

	// "\" diagonals: constant i-j, ranging over -(size-2)..(size-2)
	// excluding the two single-cell corners at +-(size-1).
	for d := -(size - 2); d <= size-2; d++ {
		var cells []int
		for i := 0; i < size; i++ {
			j := i - d
			if j >= 0 && j < size {
				cells = append(cells, i*size+j)
			}
		}
		if len(cells) >= 2 {
			appendRow(cells, 0, 1)
		}
	}
	// "/" diagonals: constant i+j, ranging over 1..(2*size-3)
	// excluding the two single-cell corners at 0 and 2*size-2.
	for s := 1; s <= 2*size-3; s++ {
		var cells []int
		for i := 0; i < size; i++ {
			j := s - i
			if j >= 0 && j < size {
				cells = append(cells, i*size+j)
			}
		}
		if len(cells) >= 2 {
			appendRow(cells, 0, 1)
		}
	}

	m := len(lo)
	c := make([]float64, n)
	for j := 0; j < n; j++ {
		c[j] = 1 + 9*gen.Float64()
	}

	return SignedProblem{M: m, N: n, A: a, Lo: lo, Hi: hi, C: c}
}
