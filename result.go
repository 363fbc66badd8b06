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

// Result is the outcome of a successful Solve/SolveSigned/SolveExact
// call: the feasible 0-1 assignment found and how many Step calls it
// took to get there.
type Result struct {
	X          []bool
	Iterations int
}

// Objective computes C^T x for the given cost vector, a convenience
// for callers that want to compare Result against other candidates.
func (r Result) Objective(c []float64) float64 {
	var obj float64
	for j, v := range r.X {
		if v {
			obj += c[j]
		}
	}
	return obj
}
