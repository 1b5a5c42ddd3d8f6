package vecmath

import (
	"math"
	"testing"
)

func TestQuadraticRoots(t *testing.T) {
	tests := []struct {
		name           string
		c0, c1, c2     float64
		wantOk         bool
		wantT0, wantT1 float64
	}{
		{"two distinct roots", -4, 0, 1, true, -2, 2},     // t^2 - 4 = 0
		{"no real roots", 4, 0, 1, false, 0, 0},           // t^2 + 4 = 0
		{"linear fallback", -6, 2, 0, true, 3, 3},         // 2t - 6 = 0
		{"degenerate, no info", 0, 0, 0, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := QuadraticRoots(tt.c0, tt.c1, tt.c2)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if math.Abs(t0-tt.wantT0) > 1e-9 || math.Abs(t1-tt.wantT1) > 1e-9 {
				t.Errorf("roots = (%v, %v), want (%v, %v)", t0, t1, tt.wantT0, tt.wantT1)
			}
		})
	}
}

func TestSmallestPositiveRoot(t *testing.T) {
	got, ok := SmallestPositiveRoot(-5, 3, 1, math.NaN())
	if !ok || math.Abs(got-1) > 1e-12 {
		t.Errorf("got (%v, %v), want (1, true)", got, ok)
	}

	_, ok = SmallestPositiveRoot(-5, -3)
	if ok {
		t.Errorf("expected no positive root")
	}

	// A root that lands just inside -EpsilonT counts as t=0 (contact case).
	got, ok = SmallestPositiveRoot(-EpsilonT / 2)
	if !ok || got != 0 {
		t.Errorf("near-zero root should clamp to 0, got (%v, %v)", got, ok)
	}
}

func TestQuarticRoots_KnownRoots(t *testing.T) {
	// (t-1)(t-2)(t-3)(t-4) = t^4 -10t^3 +35t^2 -50t +24
	roots := QuarticRoots(24, -50, 35, -10, 1)
	if len(roots) != 4 {
		t.Fatalf("expected 4 real roots, got %d: %v", len(roots), roots)
	}
	want := map[int]bool{1: false, 2: false, 3: false, 4: false}
	for _, r := range roots {
		for k := range want {
			if math.Abs(r-float64(k)) < 1e-6 {
				want[k] = true
			}
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("expected root %d not found in %v", k, roots)
		}
	}
}
