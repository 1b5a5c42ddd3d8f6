package kernels

import "github.com/dynamd/dynamd/sim/vecmath"

// Sphere computes the time-of-flight to a spherical shell of radius d
// under ballistic motion (R(t) = r0 + v*t), given the separation vector
// r0 = R_other - R_self and relative velocity v = V_other - V_self.
//
// With invert=false this is the base spec's "approach to hard core" /
// "well capture" rule: earliest t>0 where the pair closes to distance d.
// With invert=true it is the "well release" rule: earliest t>0 where a
// pair already at distance d (or inside it) separates back out to d.
func Sphere(r0, v vecmath.Vec3, d float64, invert bool) (float64, bool) {
	c0 := r0.Nrm2() - d*d
	c1 := 2 * r0.Dot(v)
	c2 := v.Nrm2()
	if invert {
		c0, c1, c2 = -c0, -c1, -c2
	}

	t0, t1, ok := vecmath.QuadraticRoots(c0, c1, c2)
	deriv := func(t float64) float64 { return c1 + 2*c2*t }
	if !ok {
		return selectApproach(c0, nil, deriv)
	}
	return selectApproach(c0, []float64{t0, t1}, deriv)
}
