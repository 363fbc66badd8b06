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

// Scenario 1: trivial 1x1.
func TestSolve_Trivial1x1(t *testing.T) {
	p := EqualityProblem{M: 1, N: 1, A: []int8{1}, B: []int{1}, C: []float64{1.0}}
	cfg := Config{Limit: 10, Kappa: 0.1, Delta: 0.01, Theta: 0.5}

	r, err := Solve(p, cfg)
	assert.NilError(t, err)
	assert.DeepEqual(t, r.X, []bool{true})
	assert.Assert(t, r.Iterations <= 1)
}

// Scenario 2: 2-of-3 selection, optimum picks the two cheapest columns.
func TestSolve_TwoOfThreeSelection(t *testing.T) {
	p := EqualityProblem{
		M: 1, N: 3,
		A: []int8{1, 1, 1},
		B: []int{2},
		C: []float64{1.0, 2.0, 3.0},
	}
	cfg := Config{Limit: 50, Kappa: 0.3, Delta: 0.0001, Theta: 0.1}

	r, err := Solve(p, cfg)
	assert.NilError(t, err)

	count := 0
	for _, v := range r.X {
		if v {
			count++
		}
	}
	assert.Equal(t, count, 2)
}

// Scenario 3: 3x3 assignment problem, feasibility on success implies
// A*x = b elementwise.
func TestSolve_3x3Assignment(t *testing.T) {
	p := GenerateAssignmentProblem(3, 42)
	assert.Equal(t, p.M, 6)
	assert.Equal(t, p.N, 9)

	cfg := Config{Limit: 200, Kappa: 0.2, Delta: 0.0001, Theta: 0.1}
	r, err := Solve(p, cfg)
	assert.NilError(t, err)

	ax := make([]int, p.M)
	for k := 0; k < p.M; k++ {
		sum := 0
		for j := 0; j < p.N; j++ {
			if r.X[j] {
				sum += int(p.A[k*p.N+j])
			}
		}
		ax[k] = sum
	}
	assert.DeepEqual(t, ax, p.B)
}

// Scenario 4: no-solution over-constrained instance.
func TestSolve_OverconstrainedNoSolution(t *testing.T) {
	p := EqualityProblem{M: 1, N: 2, A: []int8{1, 1}, B: []int{3}, C: []float64{1.0, 1.0}}
	cfg := Config{Limit: 20, Kappa: 0.3, Delta: 0.0001, Theta: 0.1}

	_, err := Solve(p, cfg)
	assert.Assert(t, errors.Is(err, ErrNoSolution))
}

// Scenario 5: parameter rejection, no iterations performed.
func TestSolve_ParameterRejection(t *testing.T) {
	p := EqualityProblem{M: 1, N: 1, A: []int8{1}, B: []int{1}, C: []float64{1.0}}
	cfg := Config{Limit: 20, Kappa: 1.0, Delta: 0.0001, Theta: 0.1}

	_, err := Solve(p, cfg)
	assert.Assert(t, errors.Is(err, ErrInvalidParameter))
}

// Scenario 6: signed ternary row.
func TestSolveSigned_TernaryRow(t *testing.T) {
	p := SignedProblem{
		M: 1, N: 3,
		A:  []int8{1, -1, 1},
		Lo: []float64{0},
		Hi: []float64{1},
		C:  []float64{1.0, -2.0, 1.0},
	}
	cfg := Config{Limit: 20, Kappa: 0.3, Delta: 0.0001, Theta: 0.1}

	r, err := SolveSigned(p, cfg)
	assert.NilError(t, err)

	sum := 0
	for j, v := range r.X {
		if v {
			sum += int(p.A[j])
		}
	}
	assert.Assert(t, sum >= 0 && sum <= 1)
}

// Budget honesty: with Limit=1 on an instance no assignment satisfies
// (b=3 over two columns), Solve gives up with ErrNoSolution once its
// single allowed step is spent. The number of steps taken is not
// observable from outside the engine, so it is not asserted here.
func TestSolve_BudgetHonesty(t *testing.T) {
	p := EqualityProblem{M: 1, N: 2, A: []int8{1, 1}, B: []int{3}, C: []float64{1.0, 1.0}}

	_, err := Solve(p, Config{Limit: 1, Kappa: 0.3, Delta: 0.0001, Theta: 0.1})
	assert.Assert(t, errors.Is(err, ErrNoSolution))
}

func TestSolveExact_MatchesHeuristicOnTrivialInstance(t *testing.T) {
	p := EqualityProblem{M: 1, N: 3, A: []int8{1, 1, 1}, B: []int{2}, C: []float64{1.0, 2.0, 3.0}}

	r, err := SolveExact(p)
	assert.NilError(t, err)

	count := 0
	for _, v := range r.X {
		if v {
			count++
		}
	}
	assert.Equal(t, count, 2)

	h, err := Solve(p, DefaultConfig())
	assert.NilError(t, err)
	assert.DeepEqual(t, r.X, h.X)
}

func TestSolveExact_RejectsOversizedInstance(t *testing.T) {
	p := EqualityProblem{M: 1, N: MaxExactVariables + 1, A: make([]int8, MaxExactVariables+1), B: []int{0}, C: make([]float64, MaxExactVariables+1)}
	for i := range p.A {
		p.A[i] = 0
	}
	p.A[0] = 1
	_, err := SolveExact(p)
	assert.Assert(t, errors.Is(err, ErrInvalidInput))
}
