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
	"log/slog"
)

// ErrInfeasible is returned by Solve and Brute when no 0-1 assignment
// satisfies every row's [Lo, Hi] interval.
var ErrInfeasible = errors.New("exact: no feasible assignment")

// Problem is the generic 0-1 ILP this package solves exactly: minimize
// c^T x subject to Lo(k) <= sum_j A(k,j)*x(j) <= Hi(k) for every row k,
// x in {0,1}^n. The equality variant (sum == b) is the special case
// Lo(k) = Hi(k) = b(k); the caller folds that conversion in, keeping
// this package variant-agnostic.
type Problem struct {
	M, N int
	A    []int8
	Lo   []float64
	Hi   []float64
	C    []float64
}

func (p Problem) at(i, j int) int8 { return p.A[i*p.N+j] }

// rowSum returns sum_j A(k,j)*x(j) for the variables fixed in
// assignment; unfixed variables are assumed 0 (only used for the
// all-fixed leaf check, where every variable is present).
func (p Problem) rowSum(k int, assignment map[int]bool) float64 {
	var sum float64
	for j := 0; j < p.N; j++ {
		if assignment[j] {
			sum += float64(p.at(k, j))
		}
	}
	return sum
}

func (p Problem) feasible(assignment map[int]bool) bool {
	for k := 0; k < p.M; k++ {
		s := p.rowSum(k, assignment)
		if s < p.Lo[k] || s > p.Hi[k] {
			return false
		}
	}
	return true
}

func (p Problem) objective(assignment map[int]bool) float64 {
	var obj float64
	for j := 0; j < p.N; j++ {
		if assignment[j] {
			obj += p.C[j]
		}
	}
	return obj
}

// relaxedLowerBound computes a lower bound on the objective achievable
// by any completion of a partial assignment: the cost already
// committed by fixed variables plus, for every free variable, the best
// case (c_j if negative, 0 otherwise). This ignores the row
// constraints entirely, which is what makes it a valid lower bound
// (a constrained minimum can never beat the unconstrained one).
func (p Problem) relaxedLowerBound(assignment map[int]bool) float64 {
	var bound float64
	for j := 0; j < p.N; j++ {
		if v, fixed := assignment[j]; fixed {
			if v {
				bound += p.C[j]
			}
			continue
		}
		if p.C[j] < 0 {
			bound += p.C[j]
		}
	}
	return bound
}

// nextFreeVariable returns the lowest-index variable not yet fixed by
// assignment, and false if every variable is fixed.
func (p Problem) nextFreeVariable(assignment map[int]bool) (int, bool) {
	for j := 0; j < p.N; j++ {
		if _, fixed := assignment[j]; !fixed {
			return j, true
		}
	}
	return 0, false
}

// Solve runs branch-and-bound variable fixing to exact optimality.
// Branch nodes are explored in lower-bound order (best-first), mirroring
// the teacher's set-cover branch-and-bound: the child with a covered
// element becomes "fix variable j to 1" here, and the uncovered child
// becomes "fix variable j to 0". It returns ErrInfeasible if no 0-1
// vector satisfies every row.
func Solve(p Problem) (x []bool, objective float64, err error) {
	root := &Node{Kind: Root, LowerBound: p.relaxedLowerBound(nil)}
	q := newLowerBoundQueue()
	q.Push(root)

	var best *Node
	bestObj := 0.0
	explored := 0

	for q.Len() > 0 {
		n := q.Pop()
		explored++

		if best != nil && n.LowerBound >= bestObj {
			continue
		}

		assignment := n.Assignment()
		j, hasFree := p.nextFreeVariable(assignment)
		if !hasFree {
			if !p.feasible(assignment) {
				continue
			}
			obj := p.objective(assignment)
			if best == nil || obj < bestObj {
				best = n
				bestObj = obj
			}
			continue
		}

		for _, kind := range []Kind{Fix0, Fix1} {
			child := &Node{Kind: kind, Parent: n, J: j}
			childAssignment := child.Assignment()
			child.LowerBound = p.relaxedLowerBound(childAssignment)
			if best != nil && child.LowerBound >= bestObj {
				continue
			}
			q.Push(child)
		}
	}

	slog.Debug("exact.Solve finished", "nodesExplored", explored, "feasible", best != nil)

	if best == nil {
		return nil, 0, ErrInfeasible
	}

	assignment := best.Assignment()
	x = make([]bool, p.N)
	for j := 0; j < p.N; j++ {
		x[j] = assignment[j]
	}
	return x, bestObj, nil
}
