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

// Package exact is a small branch-and-bound / brute-force 0-1 ILP
// solver used as the opt-in exact fallback behind wedelin.SolveExact
// and wedelin.SolveSignedExact; its tests check Solve against Brute,
// and no heuristic-engine test compares against it. It is
// adapted from the teacher's set-cover branch-and-bound (internal/tree,
// internal/solvers/queue, internal/solvers/bb.go): the same
// branch-node/priority-queue skeleton, repurposed from branching on
// "is element e covered by subset s" to branching on "is variable j
// fixed to 0 or 1".
package exact

// Kind identifies what decision, if any, a Node records relative to
// its parent.
type Kind int

const (
	// Root is the initial node: no variable fixed yet.
	Root Kind = iota
	// Fix0 fixes variable J to 0.
	Fix0
	// Fix1 fixes variable J to 1.
	Fix1
)

// Node is one node of the branch-and-bound search tree: a partial
// assignment described by the chain of Fix0/Fix1 decisions from Root
// down to this node, plus the relaxation-derived LowerBound used to
// prioritize the search queue.
type Node struct {
	Kind   Kind
	Parent *Node
	// J is the index of the variable this node fixes. Unused (zero)
	// for Root.
	J int
	// LowerBound is a lower bound on the objective value achievable by
	// any completion of this node's partial assignment.
	LowerBound float64
}

// Assignment walks the Parent chain from n to the root and returns the
// fixed values as a map from variable index to assigned value. Nodes
// closer to n take precedence, but in a well-formed tree (each
// variable fixed at most once per path) there is never a conflict.
func (n *Node) Assignment() map[int]bool {
	fixed := make(map[int]bool)
	for cur := n; cur != nil && cur.Kind != Root; cur = cur.Parent {
		if _, ok := fixed[cur.J]; !ok {
			fixed[cur.J] = cur.Kind == Fix1
		}
	}
	return fixed
}

// Depth counts the number of Fix0/Fix1 ancestors, i.e. how many
// variables this node's path has fixed.
func (n *Node) Depth() int {
	d := 0
	for cur := n; cur != nil && cur.Kind != Root; cur = cur.Parent {
		d++
	}
	return d
}
