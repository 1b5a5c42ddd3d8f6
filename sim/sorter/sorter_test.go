package sorter

import "testing"

func defaultConfig() Config {
	return Config{BucketsPerParticle: 2, InitialBucketWidth: 1.0, InnerHeapCapacity: 3}
}

func TestSorter_TopReturnsGlobalMinimum(t *testing.T) {
	s := New(4, defaultConfig(), 0)
	s.Push(1, Item{Time: 5.0, Value: "a"})
	s.Push(2, Item{Time: 2.0, Value: "b"})
	s.Push(3, Item{Time: 8.0, Value: "c"})

	it, id, ok := s.Top()
	if !ok {
		t.Fatal("expected a top item")
	}
	if id != 2 || it.Time != 2.0 {
		t.Errorf("got (id=%d, time=%v), want (id=2, time=2.0)", id, it.Time)
	}
}

func TestSorter_PopAdvancesToNextCandidate(t *testing.T) {
	s := New(4, defaultConfig(), 0)
	s.Push(1, Item{Time: 1.0})
	s.Push(1, Item{Time: 3.0})
	s.Push(2, Item{Time: 5.0})

	it, id, ok := s.Pop()
	if !ok || id != 1 || it.Time != 1.0 {
		t.Fatalf("first pop = (%v, %d, %v), want (1.0, 1, true)", it.Time, id, ok)
	}

	it, id, ok = s.Top()
	if !ok || id != 1 || it.Time != 3.0 {
		t.Fatalf("after pop, top = (%v, %d, %v), want (3.0, 1, true)", it.Time, id, ok)
	}
}

func TestSorter_ClearEmptiesParticleEntirely(t *testing.T) {
	s := New(4, defaultConfig(), 0)
	s.Push(1, Item{Time: 1.0})
	s.Push(1, Item{Time: 2.0})
	s.Push(2, Item{Time: 5.0})

	s.Clear(1)

	it, id, ok := s.Top()
	if !ok || id != 2 || it.Time != 5.0 {
		t.Fatalf("after clearing particle 1, top = (%v, %d, %v), want (5.0, 2, true)", it.Time, id, ok)
	}
}

func TestSorter_InnerHeapCapsAtK(t *testing.T) {
	s := New(2, Config{BucketsPerParticle: 2, InitialBucketWidth: 1.0, InnerHeapCapacity: 2}, 0)
	s.Push(1, Item{Time: 10.0})
	s.Push(1, Item{Time: 20.0})
	s.Push(1, Item{Time: 1.0}) // should evict the worst (20.0), not 10.0

	h := s.inner[1]
	if h.Len() != 2 {
		t.Fatalf("inner heap len = %d, want 2 (capped)", h.Len())
	}
	top, _ := h.top()
	if top.Time != 1.0 {
		t.Errorf("inner heap top = %v, want 1.0", top.Time)
	}
}

func TestSorter_EmptyReturnsFalse(t *testing.T) {
	s := New(4, defaultConfig(), 0)
	if _, _, ok := s.Top(); ok {
		t.Error("expected Top() on empty Sorter to return false")
	}
	if _, _, ok := s.Pop(); ok {
		t.Error("expected Pop() on empty Sorter to return false")
	}
}

func TestSorter_OverflowRebinsOnAdvance(t *testing.T) {
	// With only 2 buckets of width 1 starting at t=0, a push at t=100
	// lands in overflow; popping everything in-window must eventually
	// reach it.
	s := New(1, Config{BucketsPerParticle: 2, InitialBucketWidth: 1.0, InnerHeapCapacity: 3}, 0)
	s.Push(1, Item{Time: 0.5})
	s.Push(2, Item{Time: 100.0})

	it, id, ok := s.Pop()
	if !ok || id != 1 {
		t.Fatalf("first pop = (%v, %d, %v), want particle 1 first", it.Time, id, ok)
	}

	it, id, ok = s.Pop()
	if !ok || id != 2 || it.Time != 100.0 {
		t.Fatalf("second pop = (%v, %d, %v), want (100.0, 2, true)", it.Time, id, ok)
	}
}

func TestSorter_OverflowRebinsRepeatedlyWithoutLivelocking(t *testing.T) {
	// Three particles all starting beyond the initial window: every Pop()
	// must terminate (not loop forever re-binning overflow to itself), and
	// they must come out in time order.
	s := New(1, Config{BucketsPerParticle: 2, InitialBucketWidth: 1.0, InnerHeapCapacity: 3}, 0)
	s.Push(1, Item{Time: 50.0})
	s.Push(2, Item{Time: 10.0})
	s.Push(3, Item{Time: 200.0})

	want := []struct {
		id   int64
		time float64
	}{{2, 10.0}, {1, 50.0}, {3, 200.0}}

	for _, w := range want {
		it, id, ok := s.Pop()
		if !ok || id != w.id || it.Time != w.time {
			t.Fatalf("Pop() = (%v, %d, %v), want (%v, %d, true)", it.Time, id, ok, w.time, w.id)
		}
	}

	if _, _, ok := s.Pop(); ok {
		t.Error("expected Sorter to be empty after draining all three")
	}
}
