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
	"fmt"

	"github.com/wedelin-solver/wedelin/internal/engine"
)

var (
	// ErrInvalidInput is returned when a Problem's shape or values
	// violate their documented invariants (e.g. A containing a value
	// outside {0,1} for the equality variant).
	ErrInvalidInput = errors.New("wedelin: invalid input")

	// ErrInvalidParameter is returned when Config's Kappa, Delta or
	// Theta fall outside their required domains. It is the root-package
	// alias of the same condition internal/engine detects.
	ErrInvalidParameter = engine.ErrInvalidParameter

	// ErrShapeMismatch aliases the internal engine's shape-mismatch
	// condition (e.g. a signed-variant row with fewer than two nonzero
	// columns, or a negative equality bound).
	ErrShapeMismatch = engine.ErrShapeMismatch

	// ErrDegenerateRow aliases the signed engine's degenerate-row
	// condition: fewer than two reduced costs land inside a row's
	// shifted bound interval.
	ErrDegenerateRow = engine.ErrDegenerateRow

	// ErrNoSolution is returned by Solve/SolveSigned when the iteration
	// budget (Config.Limit) is exhausted without reaching a feasible
	// assignment. The heuristic offers no guarantee of convergence, so
	// this is an expected, non-exceptional outcome for hard instances.
	ErrNoSolution = errors.New("wedelin: no feasible solution found within iteration limit")
)

// ParseError reports a problem encountered while reading a text-format
// instance, carrying the 1-based line number the problem occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wedelin: parse error on line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
