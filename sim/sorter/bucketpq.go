package sorter

import "math"

// bucketPQ is the outer bounded priority queue (base spec §4.5
// FELBoundedPQ): a circular array of buckets keyed by
// floor((t-t_origin)/bucketWidth), each holding the set of particle ids
// whose per-particle minimum currently falls in that time window. Events
// beyond the window live in an overflow bucket, re-binned as the window
// advances. New construction — the teacher's event queue is a flat
// container/heap, adequate for its per-tick event rate but not for EDMD's
// O(N) events/unit-time firehose; grounded directly on base spec §4.5.
type bucketPQ struct {
	buckets     [][]int64 // physical slots; each holds particle ids as int64
	overflow    []int64
	slotOf      map[int64]int // particle id -> physical slot index, or -1 for overflow
	baseIdx     int
	tOrigin     float64
	bucketWidth float64
}

const overflowSlot = -1

func newBucketPQ(numBuckets int, bucketWidth, tOrigin float64) *bucketPQ {
	if numBuckets < 1 {
		numBuckets = 1
	}
	if bucketWidth <= 0 {
		bucketWidth = 1
	}
	return &bucketPQ{
		buckets:     make([][]int64, numBuckets),
		slotOf:      make(map[int64]int),
		tOrigin:     tOrigin,
		bucketWidth: bucketWidth,
	}
}

func (b *bucketPQ) logicalBucket(t float64) int {
	if math.IsInf(t, 1) {
		return len(b.buckets) // forces overflow
	}
	lb := int(math.Floor((t - b.tOrigin) / b.bucketWidth))
	if lb < 0 {
		lb = 0
	}
	return lb
}

// insert places id into the bucket matching t, replacing any prior
// placement for id.
func (b *bucketPQ) insert(id int64, t float64) {
	b.remove(id)

	lb := b.logicalBucket(t)
	if lb >= len(b.buckets) {
		b.overflow = append(b.overflow, id)
		b.slotOf[id] = overflowSlot
		return
	}
	phys := (b.baseIdx + lb) % len(b.buckets)
	b.buckets[phys] = append(b.buckets[phys], id)
	b.slotOf[id] = phys
}

// remove drops id from wherever it currently sits, if anywhere.
func (b *bucketPQ) remove(id int64) {
	slot, ok := b.slotOf[id]
	if !ok {
		return
	}
	delete(b.slotOf, id)
	if slot == overflowSlot {
		b.overflow = removeInt64(b.overflow, id)
		return
	}
	b.buckets[slot] = removeInt64(b.buckets[slot], id)
}

func removeInt64(s []int64, v int64) []int64 {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// earliestNonEmpty advances the window past empty buckets and returns the
// physical index of the first non-empty bucket, plus whether one exists
// within the window (false means every finite-window bucket is empty and
// the caller should consult overflow directly).
func (b *bucketPQ) earliestNonEmpty() (int, bool) {
	n := len(b.buckets)
	for i := 0; i < n; i++ {
		phys := (b.baseIdx + i) % n
		if len(b.buckets[phys]) > 0 {
			if i > 0 {
				b.advanceTo(i)
			}
			return phys, true
		}
	}
	return 0, false
}

// advanceTo moves t_origin forward by i bucket-widths. The caller (Sorter)
// is responsible for re-binning overflow entries afterward by re-inserting
// each with its currently cached event time — bucketPQ itself holds no
// event times, only bucket membership, so it cannot rebin on its own.
func (b *bucketPQ) advanceTo(i int) {
	n := len(b.buckets)
	b.baseIdx = (b.baseIdx + i) % n
	b.tOrigin += float64(i) * b.bucketWidth
}

// jumpTo advances t_origin (and the ring's base index) so that t falls
// inside the window. Only called when every finite bucket is already empty
// (earliestNonEmpty found nothing), so there are no live entries whose
// physical slot needs preserving — only the origin/index bookkeeping
// matters. Always advances by at least one bucket width, guaranteeing
// progress even if t is at or behind the current origin.
func (b *bucketPQ) jumpTo(t float64) {
	n := len(b.buckets)
	k := int(math.Floor((t - b.tOrigin) / b.bucketWidth))
	if k < 1 {
		k = 1
	}
	b.baseIdx = (b.baseIdx + k%n) % n
	b.tOrigin += float64(k) * b.bucketWidth
}

// bucketContents returns a copy of the ids currently in physical slot phys.
func (b *bucketPQ) bucketContents(phys int) []int64 {
	return append([]int64(nil), b.buckets[phys]...)
}

// clearBucket empties physical slot phys (its contents have all been
// popped/repushed by the caller).
func (b *bucketPQ) clearBucket(phys int) {
	for _, id := range b.buckets[phys] {
		delete(b.slotOf, id)
	}
	b.buckets[phys] = nil
}

// overflowIDs returns a copy of all ids currently parked in overflow.
func (b *bucketPQ) overflowIDs() []int64 {
	return append([]int64(nil), b.overflow...)
}

// widen rebuilds the bucket array with the given count and width, emptying
// every bucket and the overflow; Sorter.Widen (called by the auto-tuner)
// re-inserts the entries afterwards.
func (b *bucketPQ) widen(numBuckets int, bucketWidth float64) {
	b.buckets = make([][]int64, numBuckets)
	b.overflow = nil
	b.slotOf = make(map[int64]int)
	b.baseIdx = 0
	b.bucketWidth = bucketWidth
}
