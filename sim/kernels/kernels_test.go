package kernels

import (
	"math"
	"testing"

	"github.com/dynamd/dynamd/sim/vecmath"
)

func TestSphere_HeadOnApproach(t *testing.T) {
	// Two particles 2 apart, closing at combined speed 2 (rel. velocity -2
	// along separation), sigma=1 -> contact when relative separation == 1,
	// i.e. after closing a gap of 1 at speed 2: t = 0.5.
	r0 := vecmath.Vec3{X: 2, Y: 0, Z: 0}
	v := vecmath.Vec3{X: -2, Y: 0, Z: 0}
	got, ok := Sphere(r0, v, 1, false)
	if !ok {
		t.Fatal("expected an approach event")
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got t=%v, want 0.5", got)
	}
}

func TestSphere_AlreadyOverlapping(t *testing.T) {
	r0 := vecmath.Vec3{X: 0.5, Y: 0, Z: 0}
	v := vecmath.Vec3{X: -1, Y: 0, Z: 0}
	got, ok := Sphere(r0, v, 1, false)
	if !ok || got != 0 {
		t.Errorf("expected immediate contact at t=0, got (%v, %v)", got, ok)
	}
}

func TestSphere_Separating_NoApproachEvent(t *testing.T) {
	r0 := vecmath.Vec3{X: 2, Y: 0, Z: 0}
	v := vecmath.Vec3{X: 1, Y: 0, Z: 0}
	_, ok := Sphere(r0, v, 1, false)
	if ok {
		t.Error("separating particles outside the shell should have no approach event")
	}
}

func TestSphere_ReleaseEvent(t *testing.T) {
	// Particle sitting just inside the well shell (distance 1.4 < 1.5),
	// moving outward: expect a release (invert=true) event when it
	// reaches distance 1.5.
	r0 := vecmath.Vec3{X: 1.4, Y: 0, Z: 0}
	v := vecmath.Vec3{X: 1, Y: 0, Z: 0}
	got, ok := Sphere(r0, v, 1.5, true)
	if !ok {
		t.Fatal("expected a release event")
	}
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("got t=%v, want 0.1", got)
	}
}

func TestParabolaSphere_MatchesBallisticWhenNoAcceleration(t *testing.T) {
	r0 := vecmath.Vec3{X: 2, Y: 0, Z: 0}
	v := vecmath.Vec3{X: -2, Y: 0, Z: 0}
	want, _ := Sphere(r0, v, 1, false)
	got, ok := ParabolaSphere(r0, v, vecmath.Vec3{}, 1, false)
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Errorf("ParabolaSphere with zero accel = %v, want Sphere's %v", got, want)
	}
}

func TestParabolaSphere_DroppedBall(t *testing.T) {
	// Ball dropped from rest at (0,5,0) under g=(0,-1,0), target sphere at
	// origin radius 1: closes a gap of 4 at acceleration 1, t=sqrt(2*4)=2√2.
	r0 := vecmath.Vec3{X: 0, Y: 5, Z: 0}
	v := vecmath.Vec3{}
	a := vecmath.Vec3{X: 0, Y: -1, Z: 0}
	got, ok := ParabolaSphere(r0, v, a, 1, false)
	if !ok {
		t.Fatal("expected an intersection")
	}
	want := math.Sqrt(2 * 4)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("got t=%v, want %v", got, want)
	}
}
