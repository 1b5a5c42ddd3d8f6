// Package kernels implements the analytic time-of-flight intersection
// tests the Liouvillean needs: ray-sphere (hard core / well shell, under
// ballistic motion) and parabola-sphere (under constant acceleration).
//
// Both share one selection rule, grounded on
// original_source/.../magnet/intersection/parabola_sphere.hpp's
// `inverse` template parameter: pair separation is f(t) = |R(t)|^2 - d^2
// for some shell radius d. An "approach" event is the earliest t>0 where f
// crosses zero while closing (f'(t)<0), including the immediate-contact
// case where the pair is already past the shell and closing at t=0. A
// "recede" event is the mirror image; callers get it by negating every
// coefficient before calling selectApproach (equivalent to the original's
// flipSign()), since negating f also negates f' and swaps which root family
// looks like "closing".
package kernels

import "github.com/dynamd/dynamd/sim/vecmath"

// selectApproach returns the earliest closing-root of a polynomial given
// its value at 0 (c0) and a function giving its derivative at any root.
func selectApproach(c0 float64, roots []float64, deriv func(t float64) float64) (float64, bool) {
	if c0 < 0 && deriv(0) < 0 {
		return 0, true
	}
	candidates := make([]float64, 0, len(roots))
	for _, t := range roots {
		if deriv(t) < 0 {
			candidates = append(candidates, t)
		}
	}
	return vecmath.SmallestPositiveRoot(candidates...)
}
