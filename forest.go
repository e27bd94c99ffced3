package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Forest is a min-priority queue of partial Huffman trees ordered by weight.
// Nodes of equal weight are ordered by insertion: the same sequence of Push
// calls always produces the same sequence of PopMin results, which keeps
// tree construction fully deterministic.
//
// The zero Forest is empty and ready to use.
type Forest struct {
	h   nodeHeap
	seq uint64
}

// BuildForest constructs a Forest holding one Leaf per symbol with a nonzero
// count.  Leaves are inserted in ascending symbol order; symbols with a zero
// count are skipped entirely.
func BuildForest(table FrequencyTable) *Forest {
	var f Forest
	f.h.list = make([]forestItem, 0, len(table))
	for _, symbol := range table.Symbols() {
		if count := table[symbol]; count != 0 {
			f.Push(NewLeaf(symbol, count))
		}
	}
	return &f
}

// Push inserts a node into the forest.
func (f *Forest) Push(n Node) {
	heap.Push(&f.h, forestItem{node: n, seq: f.seq})
	f.seq++
}

// PopMin removes and returns a node whose weight is no greater than that of
// any other node in the forest.  The forest must not be empty.
func (f *Forest) PopMin() Node {
	assert.Assertf(f.Len() > 0, "PopMin called on an empty Forest")
	return heap.Pop(&f.h).(forestItem).node
}

// Len reports how many nodes the forest currently holds.
func (f *Forest) Len() int {
	return f.h.Len()
}

// type forestItem + type nodeHeap {{{

type forestItem struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []forestItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(forestItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = forestItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
