// Package vecmath implements the 3-vector and polynomial root finding math
// that the Liouvillean and intersection kernels depend on.
package vecmath

import "math"

// Vec3 is a 3-component vector used for positions, velocities, and
// accelerations. Values, not pointers: the Liouvillean streams particles
// by copying new Vec3s, never mutating in place through an alias.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the inner product v.w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Nrm2 returns |v|^2.
func (v Vec3) Nrm2() float64 {
	return v.Dot(v)
}

// Nrm returns |v|.
func (v Vec3) Nrm() float64 {
	return math.Sqrt(v.Nrm2())
}

// Normalized returns v/|v|. Undefined (returns the zero vector) if |v|==0.
func (v Vec3) Normalized() Vec3 {
	n := v.Nrm()
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1 / n)
}

// Component returns the i'th axis value (0=x, 1=y, 2=z).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with axis i set to val.
func (v Vec3) WithComponent(i int, val float64) Vec3 {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Stream advances a ballistic/accelerated trajectory: R0 + V*dt + 1/2*A*dt^2.
func Stream(r0, v, a Vec3, dt float64) Vec3 {
	return r0.Add(v.Scale(dt)).Add(a.Scale(0.5 * dt * dt))
}
