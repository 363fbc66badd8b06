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
	"log/slog"

	"github.com/wedelin-solver/wedelin/internal/engine"
	"github.com/wedelin-solver/wedelin/internal/exact"
)

// Solve runs the equality-variant Wedelin heuristic against p with the
// given configuration, stepping the engine until it reports feasible
// or Config.Limit steps have been attempted.
func Solve(p EqualityProblem, cfg Config) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	e, err := engine.NewEqualityEngine(p.M, p.N, p.A, p.B, p.C, cfg.Kappa, cfg.Delta, cfg.Theta, cfg.HalvedDualUpdate)
	if err != nil {
		return Result{}, err
	}

	for i := 1; i <= cfg.Limit; i++ {
		if e.Step() {
			slog.Debug("wedelin.Solve converged", "iterations", i)
			return Result{X: e.X(), Iterations: i}, nil
		}
	}

	slog.Debug("wedelin.Solve exhausted iteration limit", "limit", cfg.Limit)
	return Result{}, ErrNoSolution
}

// SolveSigned runs the signed-variant Wedelin heuristic against p with
// the given configuration, stepping the engine until it reports
// feasible, returns a degenerate-row error, or Config.Limit steps have
// been attempted.
func SolveSigned(p SignedProblem, cfg Config) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	e, err := engine.NewSignedEngine(p.M, p.N, p.A, p.Lo, p.Hi, p.C, cfg.Kappa, cfg.Delta, cfg.Theta)
	if err != nil {
		return Result{}, err
	}

	for i := 1; i <= cfg.Limit; i++ {
		feasible, stepErr := e.Step()
		if stepErr != nil {
			return Result{}, stepErr
		}
		if feasible {
			slog.Debug("wedelin.SolveSigned converged", "iterations", i)
			return Result{X: e.X(), Iterations: i}, nil
		}
	}

	slog.Debug("wedelin.SolveSigned exhausted iteration limit", "limit", cfg.Limit)
	return Result{}, ErrNoSolution
}

// MaxExactVariables bounds SolveExact to instances small enough that
// exhaustive/branch-and-bound search finishes in reasonable time.
const MaxExactVariables = 20

// SolveExact solves p to proven optimality using internal/exact's
// branch-and-bound search, rather than the heuristic. It exists for
// instances small enough (N <= MaxExactVariables) that a heuristic
// ErrNoSolution should not be the last word; it is never used as part
// of Solve/SolveSigned's own budget.
func SolveExact(p EqualityProblem) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if p.N > MaxExactVariables {
		return Result{}, ErrInvalidInput
	}

	lo := make([]float64, p.M)
	hi := make([]float64, p.M)
	for k, b := range p.B {
		lo[k] = float64(b)
		hi[k] = float64(b)
	}

	x, _, err := exact.Solve(exact.Problem{M: p.M, N: p.N, A: p.A, Lo: lo, Hi: hi, C: p.C})
	if err != nil {
		return Result{}, ErrNoSolution
	}
	return Result{X: x}, nil
}

// SolveSignedExact is SolveExact's signed-variant counterpart.
func SolveSignedExact(p SignedProblem) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if p.N > MaxExactVariables {
		return Result{}, ErrInvalidInput
	}

	x, _, err := exact.Solve(exact.Problem{M: p.M, N: p.N, A: p.A, Lo: p.Lo, Hi: p.Hi, C: p.C})
	if err != nil {
		return Result{}, ErrNoSolution
	}
	return Result{X: x}, nil
}
