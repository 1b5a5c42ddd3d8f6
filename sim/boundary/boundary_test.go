package boundary

import (
	"math"
	"testing"

	"github.com/dynamd/dynamd/sim/vecmath"
)

func TestPeriodic_MinimumImage(t *testing.T) {
	p := Periodic{L: vecmath.Vec3{X: 10, Y: 10, Z: 10}}
	ri := vecmath.Vec3{X: 0.5, Y: 0, Z: 0}
	rj := vecmath.Vec3{X: 9.5, Y: 0, Z: 0}
	d := p.Separation(ri, rj, 0)
	if math.Abs(d.X-(-1)) > 1e-9 {
		t.Errorf("Separation().X = %v, want -1 (wraps around)", d.X)
	}
}

func TestPeriodic_Wrap(t *testing.T) {
	p := Periodic{L: vecmath.Vec3{X: 10, Y: 10, Z: 10}}
	got := p.Wrap(vecmath.Vec3{X: -1, Y: 11, Z: 5})
	want := vecmath.Vec3{X: 9, Y: 1, Z: 5}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || got.Z != want.Z {
		t.Errorf("Wrap() = %+v, want %+v", got, want)
	}
}

func TestLeesEdwards_ShearOffsetAppliedAcrossYImage(t *testing.T) {
	le := LeesEdwards{L: vecmath.Vec3{X: 10, Y: 10, Z: 10}, Gamma: 0.5}
	ri := vecmath.Vec3{X: 0, Y: 0.5, Z: 0}
	rj := vecmath.Vec3{X: 0, Y: 9.5, Z: 0}
	d := le.Separation(ri, rj, 0.5)
	// The raw y-separation is 9, so the minimum image is ny=+1 images away:
	// d.Y becomes -1, and it drags an x-shear offset of -ny*gamma*Ly*t with it.
	if math.Abs(d.Y-(-1)) > 1e-9 {
		t.Errorf("Separation().Y = %v, want -1", d.Y)
	}
	wantShear := -1.0 * le.Gamma * le.L.Y * 0.5
	if math.Abs(d.X-wantShear) > 1e-9 {
		t.Errorf("Separation().X = %v, want shear offset %v", d.X, wantShear)
	}
}

func TestLeesEdwards_ImageVelocityOffsetOnlyOnYAxis(t *testing.T) {
	le := LeesEdwards{L: vecmath.Vec3{X: 10, Y: 10, Z: 10}, Gamma: 0.5}
	if off := le.ImageVelocityOffset(0, 1); off != (vecmath.Vec3{}) {
		t.Errorf("x-axis crossing should not impart a shear offset, got %+v", off)
	}
	off := le.ImageVelocityOffset(1, 1)
	want := vecmath.Vec3{X: 5}
	if off != want {
		t.Errorf("y-axis crossing offset = %+v, want %+v", off, want)
	}
}
