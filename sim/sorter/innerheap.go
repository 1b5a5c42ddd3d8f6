package sorter

import "container/heap"

// Item is one candidate event in a particle's inner heap: an opaque
// payload tagged with its time, so this package stays decoupled from the
// sim package's Event type (avoiding an import cycle — Sorter is used by
// sim.Simulation, so sim/sorter cannot import sim).
type Item struct {
	Time  float64
	Value interface{}
}

// innerHeap is a fixed-capacity min-heap of a single particle's candidate
// events (base spec §4.5 PELMinMax, K=3 in the reference). Grounded on
// sim/cluster/event_heap.go's container/heap-based Event ordering, narrowed
// to a tiny capacity since only the per-particle minimum ever surfaces in
// the outer priority queue.
type innerHeap struct {
	items    []Item
	capacity int
}

func newInnerHeap(capacity int) *innerHeap {
	return &innerHeap{capacity: capacity}
}

func (h *innerHeap) Len() int           { return len(h.items) }
func (h *innerHeap) Less(i, j int) bool { return h.items[i].Time < h.items[j].Time }
func (h *innerHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap) Push(x interface{}) { h.items = append(h.items, x.(Item)) }
func (h *innerHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// push inserts it, evicting the current worst (largest-time) candidate if
// the heap is already at capacity and it is an improvement.
func (h *innerHeap) push(it Item) {
	if h.Len() < h.capacity {
		heap.Push(h, it)
		return
	}

	worstIdx, worst := 0, h.items[0]
	for i, e := range h.items {
		if worst.Time < e.Time {
			worstIdx, worst = i, e
		}
	}
	if it.Time < worst.Time {
		h.items[worstIdx] = it
		heap.Fix(h, worstIdx)
	}
}

// top returns the current minimum without removing it.
func (h *innerHeap) top() (Item, bool) {
	if h.Len() == 0 {
		return Item{}, false
	}
	return h.items[0], true
}

// popMin removes and returns the current minimum.
func (h *innerHeap) popMin() (Item, bool) {
	if h.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(h).(Item), true
}

func (h *innerHeap) clear() {
	h.items = h.items[:0]
}
