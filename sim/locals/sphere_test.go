package locals

import (
	"math"
	"testing"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/newtonian"
	"github.com/dynamd/dynamd/sim/vecmath"
)

func TestSphere_GetEventTagsPartnerLocal(t *testing.T) {
	sphere := NewSphere(3, vecmath.Vec3{}, 1.0, 1.0, sim.IDRange{Kind: sim.IDRangeAll})
	dyn := newtonian.New(vecmath.Vec3{Y: -1})
	p := &sim.Particle{ID: 0, Position: vecmath.Vec3{Y: 5}, Velocity: vecmath.Vec3{}}

	ev, ok := sphere.GetEvent(p, sim.NewSimTime(0), dyn, boundary.Periodic{})
	if !ok {
		t.Fatal("expected a predicted bounce against the floor sphere")
	}
	if ev.Partner.Kind != sim.PartnerLocal || ev.Partner.ID != 3 {
		t.Errorf("Partner = %+v, want {PartnerLocal, 3}", ev.Partner)
	}
}

func TestSphere_RunEventBouncesParticle(t *testing.T) {
	sphere := NewSphere(0, vecmath.Vec3{}, 1.0, 1.0, sim.IDRange{Kind: sim.IDRangeAll})
	dyn := newtonian.New(vecmath.Vec3{})
	p := &sim.Particle{ID: 0, Position: vecmath.Vec3{Y: 1}, Velocity: vecmath.Vec3{Y: -2}, Mass: 1}
	ev := sim.Event{Time: sim.NewSimTime(0), Kind: sim.EventCore}

	sphere.RunEvent(p, ev, dyn, boundary.Periodic{})

	if math.Abs(p.Velocity.Y-2) > 1e-9 {
		t.Errorf("Velocity.Y = %v, want 2 (elastic reversal)", p.Velocity.Y)
	}
}

func TestSphere_IDAndRange(t *testing.T) {
	applies := sim.IDRange{Kind: sim.IDRangeSingle, ID: 5}
	sphere := NewSphere(2, vecmath.Vec3{}, 1.0, 1.0, applies)
	if sphere.ID() != 2 {
		t.Errorf("ID() = %d, want 2", sphere.ID())
	}
	if !sphere.Range().Matches(5) {
		t.Error("Range() should match particle 5")
	}
	if sphere.Range().Matches(6) {
		t.Error("Range() should not match particle 6")
	}
}
