package search

import (
	"container/heap"
	"sort"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// searchNode is the internal frontier entry for one discovered cell.
// The exported Node projection is derived from it on demand.
type searchNode struct {
	pos grid.Coord
	g   int
	h   int
	seq int // insertion order, the final tie-breaker
	idx int // heap index, maintained by nodeHeap.Swap
}

func (n *searchNode) f() int { return n.g + n.h }

// frontier is the open-structure policy that differentiates the engines:
// FIFO queue (BFS), LIFO stack (DFS), min-heap by g (Dijkstra) or by f (A*).
type frontier interface {
	// push inserts a newly discovered node.
	push(n *searchNode)
	// improve restores ordering after n's cost was lowered in place.
	// No-op for FIFO/LIFO frontiers, which never reopen.
	improve(n *searchNode)
	// pop removes and returns the next node per the frontier policy.
	pop() (*searchNode, bool)
	// len reports the number of queued nodes.
	len() int
	// snapshot copies the queued coordinates in frontier order.
	snapshot() []grid.Coord
}

// fifoFrontier pops in insertion order.
type fifoFrontier struct {
	items []*searchNode
}

func (f *fifoFrontier) push(n *searchNode) { f.items = append(f.items, n) }

func (f *fifoFrontier) improve(*searchNode) {}

func (f *fifoFrontier) pop() (*searchNode, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[0]
	f.items = f.items[1:]

	return n, true
}

func (f *fifoFrontier) len() int { return len(f.items) }

func (f *fifoFrontier) snapshot() []grid.Coord {
	out := make([]grid.Coord, len(f.items))
	for i, n := range f.items {
		out[i] = n.pos
	}

	return out
}

// lifoFrontier pops in reverse insertion order.
type lifoFrontier struct {
	items []*searchNode
}

func (f *lifoFrontier) push(n *searchNode) { f.items = append(f.items, n) }

func (f *lifoFrontier) improve(*searchNode) {}

func (f *lifoFrontier) pop() (*searchNode, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	last := len(f.items) - 1
	n := f.items[last]
	f.items = f.items[:last]

	return n, true
}

func (f *lifoFrontier) len() int { return len(f.items) }

func (f *lifoFrontier) snapshot() []grid.Coord {
	// Pop order: top of stack first.
	out := make([]grid.Coord, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i].pos)
	}

	return out
}

// nodeHeap orders by f ascending, then lower h, then insertion order.
// Indices are maintained so cost improvements use heap.Fix in place rather
// than lazy duplicate entries; snapshots therefore carry no stale cells.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f() != h[j].f() {
		return h[i].f() < h[j].f()
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx = i
	h[j].idx = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.idx = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*h = old[:last]

	return n
}

// heapFrontier pops the minimum-priority node. With a zero heuristic the
// ordering degenerates to (g, insertion order), which is exactly Dijkstra.
type heapFrontier struct {
	items nodeHeap
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{items: make(nodeHeap, 0)}
	heap.Init(&f.items)

	return f
}

func (f *heapFrontier) push(n *searchNode) { heap.Push(&f.items, n) }

func (f *heapFrontier) improve(n *searchNode) { heap.Fix(&f.items, n.idx) }

func (f *heapFrontier) pop() (*searchNode, bool) {
	if f.items.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&f.items).(*searchNode), true
}

func (f *heapFrontier) len() int { return f.items.Len() }

func (f *heapFrontier) snapshot() []grid.Coord {
	// Sort a detached copy by the heap's Less relation; plain element swaps
	// leave the live heap indices untouched.
	tmp := make(nodeHeap, len(f.items))
	copy(tmp, f.items)
	sort.Slice(tmp, func(i, j int) bool { return tmp.Less(i, j) })
	out := make([]grid.Coord, len(tmp))
	for i, n := range tmp {
		out[i] = n.pos
	}

	return out
}
