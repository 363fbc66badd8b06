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

import "fmt"

// MaxBruteForceVariables is the largest N that Brute will accept: above
// it, an assignment no longer fits in a uint32 combination mask. Adapted from
// the teacher's brute_standalone.go, which enumerates subset-selection
// combinations the same way with the same ceiling.
const MaxBruteForceVariables = 32

// Brute enumerates every one of the 2^n candidate assignments as a
// bitmask and returns the feasible one with lowest objective. It exists
// as an independent, trivially-correct oracle to check Solve against
// on tiny instances; it is never the
// production solve path. It returns ErrInfeasible if no assignment
// satisfies every row.
func Brute(p Problem) (x []bool, objective float64, err error) {
	if p.N > MaxBruteForceVariables {
		return nil, 0, fmt.Errorf("exact: Brute supports at most %d variables, got %d", MaxBruteForceVariables, p.N)
	}

	var best uint32
	bestObj := 0.0
	found := false

	total := uint64(1) << uint(p.N)
	for m := uint64(0); m < total; m++ {
		mask := uint32(m)
		assignment := make(map[int]bool, p.N)
		for j := 0; j < p.N; j++ {
			assignment[j] = mask&(1<<uint(j)) != 0
		}
		if !p.feasible(assignment) {
			continue
		}
		obj := p.objective(assignment)
		if !found || obj < bestObj {
			found = true
			bestObj = obj
			best = mask
		}
	}

	if !found {
		return nil, 0, ErrInfeasible
	}

	x = make([]bool, p.N)
	for j := 0; j < p.N; j++ {
		x[j] = best&(1<<uint(j)) != 0
	}
	return x, bestObj, nil
}
