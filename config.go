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

// Config holds the heuristic's tunable parameters. The zero value is
// not usable; call DefaultConfig for sane defaults and override only
// the fields that need to change.
type Config struct {
	// Limit is the maximum number of Step calls attempted before
	// giving up and returning ErrNoSolution.
	Limit int
	// Kappa (kappa) controls the penalty-delta scale, kappa/(1-kappa);
	// must be in [0,1).
	Kappa float64
	// Delta (ell) is the fixed additive term of the penalty delta;
	// must be in [0,+inf).
	Delta float64
	// Theta (theta) is the per-row penalty decay factor applied before
	// every update; must be in [0,1].
	Theta float64
	// HalvedDualUpdate selects the "textbook" dual-price update
	// pi(k) += (r+ + r-)/2 instead of the source-verbatim
	// pi(k) += r+ + r-/2. See DESIGN.md Open Question #1.
	HalvedDualUpdate bool
}

// DefaultConfig returns the parameter values spec.md documents as the
// defaults: Limit=100, Kappa=0.001, Delta=0.0001, Theta=0.001,
// HalvedDualUpdate=false.
func DefaultConfig() Config {
	return Config{
		Limit: 100,
		Kappa: 0.001,
		Delta: 0.0001,
		Theta: 0.001,
	}
}
