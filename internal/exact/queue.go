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

import "container/heap"

// lowerBoundQueue is a priority queue of nodes where nodes with a
// lower LowerBound are prioritized (Popped first). Adapted from the
// teacher's internal/solvers/queue.LowerBoundPriorityQueue, which
// queues the same way over *tree.Node.
type lowerBoundQueue struct {
	q pq
}

func newLowerBoundQueue() lowerBoundQueue {
	return lowerBoundQueue{make(pq, 0)}
}

func (q *lowerBoundQueue) Push(node *Node) {
	heap.Push(&q.q, &item{node: node})
}

func (q *lowerBoundQueue) Pop() *Node {
	return heap.Pop(&q.q).(*item).node
}

func (q *lowerBoundQueue) Len() int {
	return q.q.Len()
}

// item is a node with its heap index. Adapted from the PriorityQueue
// example at https://pkg.go.dev/container/heap.
type item struct {
	node  *Node
	index int
}

// pq implements heap.Interface. Not intended to be used directly; use
// lowerBoundQueue instead.
type pq []*item

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	return q[i].node.LowerBound < q[j].node.LowerBound
}
func (q pq) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (pq *pq) Push(x any) {
	n := len(*pq)
	it := x.(*item)
	it.index = n
	*pq = append(*pq, it)
}
func (pq *pq) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[0 : n-1]
	return it
}
