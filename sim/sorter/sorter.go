// Package sorter implements the bounded priority queue + per-particle
// min-heap hybrid (base spec §4.5): FELBoundedPQ (circular bucket array
// with an overflow bucket) outer structure, PELMinMax inner structure.
// Deliberately decoupled from the sim package's Event/ParticleID types
// (operating on int64 ids and an opaque Item payload instead) since
// sim.Simulation holds a Sorter, so this package cannot import sim.
package sorter

import (
	"math"
	"sort"
)

// Config groups the Sorter's auto-tuning parameters (mirrors
// sim.SorterConfig; kept as a separate type here to avoid the import sim
// would otherwise need to construct one, since sim itself constructs a
// Sorter from its own config values).
type Config struct {
	BucketsPerParticle int
	InitialBucketWidth float64
	InnerHeapCapacity  int
}

// Sorter is the hybrid bounded-PQ + per-particle-min-heap structure. Only
// the minimum of each particle's inner heap participates in the outer
// bucket array. Validity (counter) checking is the caller's job, per base
// spec §4.6's pseudocode — Sorter only tracks "what is the earliest item
// for whom", never particle state.
type Sorter struct {
	inner    map[int64]*innerHeap
	outer    *bucketPQ
	capacity int

	// recentDts/lastPopTime/havePopped track a running sample of
	// inter-event times so bucketWidth can auto-tune to the running
	// median event rate (base spec §4.5: "Δ_bucket auto-tunes to the
	// running median event rate").
	recentDts       []float64
	dtCap           int
	lastPopTime     float64
	havePopped      bool
	popsSinceRetune int
	retuneEvery     int
}

// New creates an empty Sorter. nParticles informs the default bucket count
// (2*n, per base spec §4.5) when cfg.BucketsPerParticle is 0.
func New(nParticles int, cfg Config, tOrigin float64) *Sorter {
	perParticle := cfg.BucketsPerParticle
	if perParticle == 0 {
		perParticle = 2
	}
	width := cfg.InitialBucketWidth
	if width <= 0 {
		width = 1
	}
	k := cfg.InnerHeapCapacity
	if k == 0 {
		k = 3
	}
	numBuckets := perParticle * nParticles
	if numBuckets < 1 {
		numBuckets = 1
	}
	dtCap := numBuckets
	if dtCap < 8 {
		dtCap = 8
	}
	retuneEvery := numBuckets
	if retuneEvery < 4 {
		retuneEvery = 4
	}
	return &Sorter{
		inner:       make(map[int64]*innerHeap),
		outer:       newBucketPQ(numBuckets, width, tOrigin),
		capacity:    k,
		dtCap:       dtCap,
		retuneEvery: retuneEvery,
	}
}

func (s *Sorter) heapFor(id int64) *innerHeap {
	h, ok := s.inner[id]
	if !ok {
		h = newInnerHeap(s.capacity)
		s.inner[id] = h
	}
	return h
}

// Push inserts it into particle id's inner heap and, if it becomes the new
// per-particle minimum, updates the outer bucket entry.
func (s *Sorter) Push(id int64, it Item) {
	h := s.heapFor(id)
	before, hadBefore := h.top()
	h.push(it)
	after, _ := h.top()

	if !hadBefore || after.Time != before.Time {
		s.outer.insert(id, after.Time)
	}
}

// Clear empties particle id's inner heap entirely (invalidation: base spec
// §4.5, called before re-predicting a mutated particle's events).
func (s *Sorter) Clear(id int64) {
	if h, ok := s.inner[id]; ok {
		h.clear()
	}
	s.outer.remove(id)
}

// Top returns the globally-earliest item and the particle id it belongs
// to, without removing it. Returns false if the Sorter is empty.
func (s *Sorter) Top() (Item, int64, bool) {
	for {
		phys, ok := s.outer.earliestNonEmpty()
		if !ok {
			if !s.rebinOverflow() {
				return Item{}, 0, false
			}
			continue
		}

		ids := s.outer.bucketContents(phys)
		bestID, bestItem, found := s.bestOf(ids)
		if !found {
			// Stale bucket: every id in it has since been cleared without
			// the outer slot being removed (shouldn't normally happen,
			// defensive only).
			s.outer.clearBucket(phys)
			continue
		}
		// The window may have advanced far enough that an overflow entry
		// now precedes this bucket's best: re-bin overflow and look again.
		if ovIDs := s.outer.overflowIDs(); len(ovIDs) > 0 {
			if _, ovItem, ovFound := s.bestOf(ovIDs); ovFound && ovItem.Time < bestItem.Time {
				for _, oid := range ovIDs {
					if h, has := s.inner[oid]; has {
						if it, ok := h.top(); ok {
							s.outer.insert(oid, it.Time)
						}
					}
				}
				continue
			}
		}
		return bestItem, bestID, true
	}
}

func (s *Sorter) bestOf(ids []int64) (int64, Item, bool) {
	var bestID int64
	var bestItem Item
	found := false
	for _, id := range ids {
		h, ok := s.inner[id]
		if !ok {
			continue
		}
		it, has := h.top()
		if !has {
			continue
		}
		if !found || it.Time < bestItem.Time {
			bestID, bestItem, found = id, it, true
		}
	}
	return bestID, bestItem, found
}

// rebinOverflow advances the bucket window to the earliest time present in
// overflow and re-inserts every overflow particle by its current cached
// minimum. Returns false if overflow (and the whole Sorter) is empty.
//
// Must jump t_origin/baseIdx forward before reinserting: earliestNonEmpty
// only calls this once every finite bucket is empty, so the overflow
// entries' logical bucket is unreachable under the *current* origin by
// definition — reinserting without moving the origin recomputes the same
// out-of-window index and hands the same ids straight back to overflow,
// looping Top() forever (base spec §4.5: "When pop() finds bucket 0 empty,
// t_origin += Δ_bucket and the ring advances").
func (s *Sorter) rebinOverflow() bool {
	ids := s.outer.overflowIDs()
	if len(ids) == 0 {
		return false
	}

	minTime := math.Inf(1)
	var live []int64
	for _, id := range ids {
		h, ok := s.inner[id]
		if !ok {
			s.outer.remove(id)
			continue
		}
		it, has := h.top()
		if !has {
			s.outer.remove(id)
			continue
		}
		live = append(live, id)
		if it.Time < minTime {
			minTime = it.Time
		}
	}
	if len(live) == 0 {
		return false
	}

	s.outer.jumpTo(minTime)
	for _, id := range live {
		it, _ := s.inner[id].top()
		s.outer.insert(id, it.Time)
	}
	return true
}

// Pop removes and returns the globally-earliest item, advancing that
// particle's inner heap to its next candidate.
func (s *Sorter) Pop() (Item, int64, bool) {
	it, id, ok := s.Top()
	if !ok {
		return Item{}, 0, false
	}
	s.recordDt(it.Time)
	h := s.inner[id]
	h.popMin()
	if next, has := h.top(); has {
		s.outer.insert(id, next.Time)
	} else {
		s.outer.remove(id)
	}
	s.maybeRetune()
	return it, id, true
}

// recordDt folds the interval since the previous Pop into the running
// sample used to estimate the median event rate, capped so the estimate
// tracks a changing rate rather than averaging over the whole run.
func (s *Sorter) recordDt(t float64) {
	if s.havePopped {
		if dt := t - s.lastPopTime; dt > 0 {
			if len(s.recentDts) >= s.dtCap {
				s.recentDts = s.recentDts[1:]
			}
			s.recentDts = append(s.recentDts, dt)
		}
	}
	s.lastPopTime = t
	s.havePopped = true
}

// medianDt returns the median of the current sample window.
func (s *Sorter) medianDt() (float64, bool) {
	n := len(s.recentDts)
	if n == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), s.recentDts...)
	sort.Float64s(sorted)
	return sorted[n/2], true
}

// maybeRetune widens/narrows the bucket array toward the running median
// event rate every retuneEvery pops, so Δ_bucket tracks the simulation's
// actual event density instead of staying pinned at its initial guess
// (base spec §4.5). Skipped when the estimate is already within 2x of the
// current width, to avoid rebuilding the bucket array on every tick.
func (s *Sorter) maybeRetune() {
	s.popsSinceRetune++
	if s.popsSinceRetune < s.retuneEvery {
		return
	}
	s.popsSinceRetune = 0

	median, ok := s.medianDt()
	if !ok || median <= 0 || math.IsInf(median, 0) {
		return
	}
	ratio := median / s.outer.bucketWidth
	if ratio > 0.5 && ratio < 2.0 {
		return
	}
	s.Widen(len(s.outer.buckets), median, s.outer.tOrigin)
}

// Widen rebuilds the outer bucket array with the given bucket count and
// width, starting at tOrigin, then re-inserts every particle's current
// minimum. Its only caller is maybeRetune; the Sorter has no detection of,
// or recovery from, a non-finite bucket index.
func (s *Sorter) Widen(numBuckets int, bucketWidth, tOrigin float64) {
	s.outer.widen(numBuckets, bucketWidth)
	s.outer.tOrigin = tOrigin
	for id, h := range s.inner {
		if it, has := h.top(); has {
			s.outer.insert(id, it.Time)
		}
	}
}

// Reset empties the Sorter entirely (full repopulation follows via Push,
// per base spec §4.5 rebuild()).
func (s *Sorter) Reset() {
	s.inner = make(map[int64]*innerHeap)
	s.outer.overflow = nil
	s.outer.slotOf = make(map[int64]int)
	for i := range s.outer.buckets {
		s.outer.buckets[i] = nil
	}
	s.recentDts = nil
	s.havePopped = false
	s.popsSinceRetune = 0
}
