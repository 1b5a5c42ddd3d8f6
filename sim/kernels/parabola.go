package kernels

import "github.com/dynamd/dynamd/sim/vecmath"

// ParabolaSphere computes the time-of-flight to a spherical shell of
// radius d under constant relative acceleration a (gravity), given
// relative separation r0 and relative velocity v.
//
// R(t) = r0 + v*t + 1/2*a*t^2, so f(t) = |R(t)|^2 - d^2 is quartic in t:
//
//	f(t) = c0 + c1 t + c2 t^2 + c3 t^3 + c4 t^4
//	c0 = |r0|^2 - d^2
//	c1 = 2(r0.v)
//	c2 = (r0.a) + |v|^2
//	c3 = v.a
//	c4 = |a|^2/4
//
// invert mirrors Sphere's invert: false selects the closing (approach)
// root, true the opening (release) root. Grounded on
// original_source/.../magnet/intersection/parabola_sphere.hpp's structure;
// coefficients are re-derived directly (not factorial-scaled) since the
// root finder here (gonum's companion-matrix Eigen) wants the plain
// polynomial, not the magnet library's derivative-scaled representation.
func ParabolaSphere(r0, v, a vecmath.Vec3, d float64, invert bool) (float64, bool) {
	c0 := r0.Nrm2() - d*d
	c1 := 2 * r0.Dot(v)
	c2 := r0.Dot(a) + v.Nrm2()
	c3 := v.Dot(a)
	c4 := 0.25 * a.Nrm2()

	if a.Nrm2() == 0 {
		return Sphere(r0, v, d, invert)
	}

	if invert {
		c0, c1, c2, c3, c4 = -c0, -c1, -c2, -c3, -c4
	}

	roots := vecmath.QuarticRoots(c0, c1, c2, c3, c4)
	deriv := func(t float64) float64 { return c1 + 2*c2*t + 3*c3*t*t + 4*c4*t*t*t }
	return selectApproach(c0, roots, deriv)
}
