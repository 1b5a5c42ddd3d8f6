package interactions

import (
	"math"
	"testing"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/newtonian"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// TestSquareWell_ApproachSequenceIsWellInCoreWellOut exercises base spec
// scenario E3: two particles approaching head-on through a square well see
// WellIn (capture, speed increase), then Core (elastic reflection), then
// WellOut (release, speed restored to its pre-capture magnitude), in that
// order.
func TestSquareWell_ApproachSequenceIsWellInCoreWellOut(t *testing.T) {
	bc := boundary.Periodic{L: vecmath.Vec3{X: 100, Y: 100, Z: 100}}
	dyn := newtonian.New(vecmath.Vec3{})
	sw := NewSquareWell(1.0, 1.5, 0.5, 1.0, sim.IDPairRange{Kind: sim.PairRangeAll})

	p1 := &sim.Particle{ID: 0, Position: vecmath.Vec3{X: -3}, Velocity: vecmath.Vec3{X: 1}, Mass: 1}
	p2 := &sim.Particle{ID: 1, Position: vecmath.Vec3{X: 3}, Velocity: vecmath.Vec3{X: -1}, Mass: 1}

	// WellIn: closing at relative speed 2 from separation 6, crosses the
	// 1.5 outer shell at t = (6-1.5)/2 = 2.25.
	ev1, ok := sw.GetEvent(p1, p2, sim.NewSimTime(0), dyn, bc)
	if !ok || ev1.Kind != sim.EventWellIn {
		t.Fatalf("first event = %+v, ok=%v, want EventWellIn", ev1, ok)
	}
	if math.Abs(ev1.Time.Value()-2.25) > 1e-9 {
		t.Errorf("WellIn time = %v, want 2.25", ev1.Time.Value())
	}
	dyn.Stream(p1, ev1.Time.Value())
	dyn.Stream(p2, ev1.Time.Value())
	sw.RunEvent(p1, p2, ev1, dyn, bc)

	if sw.CaptureTest(p1, p2, bc) == sim.NotCaptured {
		t.Fatal("pair should be captured after WellIn")
	}
	speedAfterWellIn := math.Abs(p1.Velocity.X)
	if speedAfterWellIn <= 1.0 {
		t.Errorf("speed after WellIn = %v, want > 1.0 (well attraction accelerates approach)", speedAfterWellIn)
	}

	// Core: the now-faster approach reaches the core shell next.
	ev2, ok := sw.GetEvent(p1, p2, sim.NewSimTime(ev1.Time.Value()), dyn, bc)
	if !ok || ev2.Kind != sim.EventCore {
		t.Fatalf("second event = %+v, ok=%v, want EventCore", ev2, ok)
	}
	dyn.Stream(p1, ev2.Time.Value()-ev1.Time.Value())
	dyn.Stream(p2, ev2.Time.Value()-ev1.Time.Value())
	sw.RunEvent(p1, p2, ev2, dyn, bc)

	if math.Abs(math.Abs(p1.Velocity.X)-speedAfterWellIn) > 1e-9 {
		t.Errorf("speed after elastic Core = %v, want %v (magnitude preserved)", math.Abs(p1.Velocity.X), speedAfterWellIn)
	}
	if p1.Velocity.X >= 0 {
		t.Error("p1 should now be moving away (negative x) after reflecting off the core")
	}

	// WellOut: now separating, crosses the 1.5 outer shell releasing the
	// captured energy and restoring the original approach speed.
	ev3, ok := sw.GetEvent(p1, p2, sim.NewSimTime(ev2.Time.Value()), dyn, bc)
	if !ok || ev3.Kind != sim.EventWellOut {
		t.Fatalf("third event = %+v, ok=%v, want EventWellOut", ev3, ok)
	}
	dyn.Stream(p1, ev3.Time.Value()-ev2.Time.Value())
	dyn.Stream(p2, ev3.Time.Value()-ev2.Time.Value())
	sw.RunEvent(p1, p2, ev3, dyn, bc)

	if sw.CaptureTest(p1, p2, bc) != sim.NotCaptured {
		t.Error("pair should no longer be captured after WellOut")
	}
	if math.Abs(math.Abs(p1.Velocity.X)-1.0) > 1e-9 {
		t.Errorf("speed after WellOut = %v, want 1.0 (restored)", math.Abs(p1.Velocity.X))
	}
}
