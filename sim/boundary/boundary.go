// Package boundary implements the periodic and Lees-Edwards shearing
// boundary conditions (base spec §4.3): minimum-image pair separation and
// position wrapping into the primary cell.
package boundary

import (
	"math"

	"github.com/dynamd/dynamd/sim/vecmath"
)

// Condition is the tagged-variant capability the rest of the core depends
// on. Periodic and LeesEdwards are the only two implementations the base
// spec calls for, so this stays a small closed interface per design note
// §9 rather than an open registry.
type Condition interface {
	// Separation returns the minimum-image displacement rj - ri at time t.
	Separation(ri, rj vecmath.Vec3, t float64) vecmath.Vec3
	// Wrap folds a position back into the primary cell.
	Wrap(r vecmath.Vec3) vecmath.Vec3
	// ImageVelocityOffset returns the velocity correction a particle
	// picks up when it crosses the image boundary along axis i (zero
	// under Periodic; non-zero shear rate under Lees-Edwards).
	ImageVelocityOffset(axis int, t float64) vecmath.Vec3
}

// Periodic is the minimum-image convention: Δr - L·round(Δr/L) per axis.
type Periodic struct {
	L vecmath.Vec3
}

func (p Periodic) Separation(ri, rj vecmath.Vec3, _ float64) vecmath.Vec3 {
	d := rj.Sub(ri)
	return vecmath.Vec3{
		X: minimumImage(d.X, p.L.X),
		Y: minimumImage(d.Y, p.L.Y),
		Z: minimumImage(d.Z, p.L.Z),
	}
}

func (p Periodic) Wrap(r vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{
		X: wrapAxis(r.X, p.L.X),
		Y: wrapAxis(r.Y, p.L.Y),
		Z: wrapAxis(r.Z, p.L.Z),
	}
}

func (p Periodic) ImageVelocityOffset(_ int, _ float64) vecmath.Vec3 { return vecmath.Vec3{} }

// LeesEdwards is the sliding-image shearing boundary: the y-image wraps
// offset the x-coordinate by γ̇·Ly·t, so crossing the y-boundary also
// imparts an x-velocity image offset of γ̇·Ly.
type LeesEdwards struct {
	L     vecmath.Vec3
	Gamma float64 // shear rate γ̇
}

func (le LeesEdwards) shearOffset(t float64) float64 {
	return le.Gamma * le.L.Y * t
}

func (le LeesEdwards) Separation(ri, rj vecmath.Vec3, t float64) vecmath.Vec3 {
	d := rj.Sub(ri)

	// How many whole y-images away is the minimum image?
	ny := math.Round(d.Y / le.L.Y)
	d.Y -= ny * le.L.Y
	// Crossing ny images in y also shifts the x-coordinate by the
	// accumulated shear offset at this instant.
	d.X -= ny * le.shearOffset(t)
	d.X = minimumImage(d.X, le.L.X)
	d.Z = minimumImage(d.Z, le.L.Z)
	return d
}

func (le LeesEdwards) Wrap(r vecmath.Vec3) vecmath.Vec3 {
	// Position wrapping ignores the time-dependent shear (it is applied
	// only to separations and image-crossing velocity corrections, per
	// base spec §4.3); the primary cell itself stays rectangular.
	return vecmath.Vec3{
		X: wrapAxis(r.X, le.L.X),
		Y: wrapAxis(r.Y, le.L.Y),
		Z: wrapAxis(r.Z, le.L.Z),
	}
}

func (le LeesEdwards) ImageVelocityOffset(axis int, _ float64) vecmath.Vec3 {
	if axis != 1 {
		return vecmath.Vec3{}
	}
	return vecmath.Vec3{X: le.Gamma * le.L.Y}
}

func minimumImage(d, l float64) float64 {
	if l == 0 {
		return d
	}
	return d - l*math.Round(d/l)
}

func wrapAxis(x, l float64) float64 {
	if l == 0 {
		return x
	}
	x = math.Mod(x, l)
	if x < 0 {
		x += l
	}
	return x
}
