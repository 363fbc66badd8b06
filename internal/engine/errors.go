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

import "errors"

var (
	// ErrInvalidParameter is returned when kappa, ell or theta fall
	// outside their required domains.
	ErrInvalidParameter = errors.New("engine: invalid parameter")

	// ErrShapeMismatch is returned when the lengths of A, b (or lo/hi)
	// and c disagree with m and n, when a row's bound is malformed
	// (negative b_k, or lo > hi), or when a signed-variant row has fewer
	// than two nonzero columns. An equality row whose b_k exceeds its
	// nonzero column count is accepted and simply never becomes
	// feasible.
	ErrShapeMismatch = errors.New("engine: shape mismatch")

	// ErrDegenerateRow is returned by the signed variant's update when
	// fewer than two reduced costs fall inside the row's shifted
	// bound interval, leaving the top-two selection undefined.
	ErrDegenerateRow = errors.New("engine: degenerate row")
)
