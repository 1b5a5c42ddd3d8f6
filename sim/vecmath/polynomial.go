package vecmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EpsilonT is the numeric slack applied when filtering roots so that
// events sitting exactly at the current simulation time are not missed
// due to floating point noise (spec: ε_t, typically 1e-12·τ).
const EpsilonT = 1e-12

// QuadraticRoots solves c0 + c1*t + c2*t^2 = 0 and returns its real roots
// in ascending order. ok is false if c2==0 and c1==0 (no quadratic/linear
// term) or if the discriminant is negative (no real roots).
func QuadraticRoots(c0, c1, c2 float64) (t0, t1 float64, ok bool) {
	if c2 == 0 {
		if c1 == 0 {
			return 0, 0, false
		}
		r := -c0 / c1
		return r, r, true
	}
	disc := c1*c1 - 4*c2*c0
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	// Numerically stable form (avoids cancellation), Numerical Recipes §5.6.
	var q float64
	if c1 >= 0 {
		q = -0.5 * (c1 + sq)
	} else {
		q = -0.5 * (c1 - sq)
	}
	r0 := q / c2
	var r1 float64
	if q != 0 {
		r1 = c0 / q
	} else {
		r1 = r0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, true
}

// SmallestPositiveRoot returns the smallest root in roots that is greater
// than -EpsilonT (i.e. "positive, with numeric slack"), or (+Inf, false)
// if none qualifies.
func SmallestPositiveRoot(roots ...float64) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, r := range roots {
		if math.IsNaN(r) {
			continue
		}
		if r > -EpsilonT && r < best {
			best = r
			found = true
		}
	}
	if !found {
		return math.Inf(1), false
	}
	if best < 0 {
		best = 0
	}
	return best, true
}

// QuarticRoots solves c0 + c1*t + c2*t^2 + c3*t^3 + c4*t^4 = 0 via the
// eigenvalues of the polynomial's companion matrix (gonum/mat's general
// Eigen decomposition), returning only the real roots. Used by the
// gravitational (parabola-sphere) intersection kernel, where a closed-form
// solution is impractical.
func QuarticRoots(c0, c1, c2, c3, c4 float64) []float64 {
	if c4 == 0 {
		// Degrades to cubic/lower; handled by the caller's quadratic path
		// in the zero-gravity case, so this is effectively unreached in
		// practice. Here c3 is ignored and only c0 + c1*t + c2*t^2 is
		// solved, which is exact only when c3 is also zero.
		r0, r1, ok := QuadraticRoots(c0, c1, c2)
		if !ok {
			return nil
		}
		return []float64{r0, r1}
	}

	// Monic form: t^4 + a3 t^3 + a2 t^2 + a1 t + a0 = 0
	a0, a1, a2, a3 := c0/c4, c1/c4, c2/c4, c3/c4

	// Companion matrix (Frobenius form):
	//   [ -a3 -a2 -a1 -a0 ]
	//   [  1   0   0   0  ]
	//   [  0   1   0   0  ]
	//   [  0   0   1   0  ]
	companion := mat.NewDense(4, 4, []float64{
		-a3, -a2, -a1, -a0,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenRight); !ok {
		return nil
	}

	roots := make([]float64, 0, 4)
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) < 1e-9 {
			roots = append(roots, real(v))
		}
	}
	return roots
}
