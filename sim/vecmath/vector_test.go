package vecmath

import (
	"math"
	"testing"
)

func TestVec3_DotNrm(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Nrm2(); got != 25 {
		t.Errorf("Nrm2() = %v, want 25", got)
	}
	if got := v.Nrm(); got != 5 {
		t.Errorf("Nrm() = %v, want 5", got)
	}
	w := Vec3{1, 0, 0}
	if got := v.Dot(w); got != 3 {
		t.Errorf("Dot() = %v, want 3", got)
	}
}

func TestVec3_Normalized(t *testing.T) {
	v := Vec3{0, 3, 4}
	n := v.Normalized()
	if math.Abs(n.Nrm()-1) > 1e-12 {
		t.Errorf("Normalized() has norm %v, want 1", n.Nrm())
	}

	zero := Vec3{}
	if got := zero.Normalized(); got != (Vec3{}) {
		t.Errorf("Normalized() of zero vector = %v, want zero vector", got)
	}
}

func TestStream_BallisticAndAccelerated(t *testing.T) {
	tests := []struct {
		name     string
		r0, v, a Vec3
		dt       float64
		want     Vec3
	}{
		{"pure ballistic", Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{}, 2, Vec3{2, 0, 0}},
		{"free fall from rest", Vec3{0, 5, 0}, Vec3{}, Vec3{0, -1, 0}, 2, Vec3{0, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stream(tt.r0, tt.v, tt.a, tt.dt)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 || math.Abs(got.Z-tt.want.Z) > 1e-12 {
				t.Errorf("Stream() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
