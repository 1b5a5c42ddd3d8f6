// Package newtonian implements the canonical ballistic/gravitational
// Liouvillean (base spec §4.1), grounded on
// original_source/src/dynamics/liouvillean/NewtonMCL.hpp's streaming and
// event-execution responsibilities (the base class those files extend is
// not present in the retrieved sources; the formulas below follow base
// spec §4.1's pseudocode directly).
package newtonian

import (
	"math"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/kernels"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// NewtonianMCL streams particles ballistically, or under a constant
// acceleration field (gravity) when non-zero. Relative pair dynamics always
// reduce to the ballistic (quadratic) case, since a uniform external field
// applies identically to both particles and cancels in the relative frame;
// the quartic parabola-sphere kernel is only needed for Local events against
// a fixed object (scenario E4).
type NewtonianMCL struct {
	Gravity vecmath.Vec3
}

// New constructs a NewtonianMCL with the given constant acceleration field.
func New(gravity vecmath.Vec3) *NewtonianMCL {
	return &NewtonianMCL{Gravity: gravity}
}

func (n *NewtonianMCL) Stream(p *sim.Particle, dt float64) {
	p.Position = vecmath.Stream(p.Position, p.Velocity, n.Gravity, dt)
	if n.Gravity != (vecmath.Vec3{}) {
		p.Velocity = p.Velocity.Add(n.Gravity.Scale(dt))
	}
}

func (n *NewtonianMCL) PredictPair(p1, p2 *sim.Particle, systemTime sim.SimTime, bc boundary.Condition, kind sim.EventKind, d float64, invert bool) (sim.Event, bool) {
	r0 := bc.Separation(p1.Position, p2.Position, systemTime.Value())
	v := p2.Velocity.Sub(p1.Velocity)

	dt, ok := kernels.Sphere(r0, v, d, invert)
	if !ok {
		return sim.NoEvent, false
	}

	return sim.Event{
		Time:     systemTime.Advance(dt),
		Particle: p1.ID,
		Partner:  sim.EventPartner{Kind: sim.PartnerParticle, ID: int(p2.ID)},
		Kind:     kind,
		Counter:  p2.EventCounter,
	}, true
}

func (n *NewtonianMCL) PredictLocal(p *sim.Particle, systemTime sim.SimTime, center vecmath.Vec3, d float64, invert bool) (sim.Event, bool) {
	r0 := p.Position.Sub(center)

	var dt float64
	var ok bool
	if n.Gravity == (vecmath.Vec3{}) {
		dt, ok = kernels.Sphere(r0, p.Velocity, d, invert)
	} else {
		dt, ok = kernels.ParabolaSphere(r0, p.Velocity, n.Gravity, d, invert)
	}
	if !ok {
		return sim.NoEvent, false
	}

	return sim.Event{
		Time:     systemTime.Advance(dt),
		Particle: p.ID,
		Partner:  sim.NoPartner,
		Kind:     sim.EventCore,
	}, true
}

// ExecuteEvent applies the discontinuous velocity update for the given
// event kind (base spec §4.1 "Event execution", steps 2-5).
func (n *NewtonianMCL) ExecuteEvent(p1, p2 *sim.Particle, ev sim.Event, bc boundary.Condition, elasticity, wellDepth float64, normal vecmath.Vec3) []sim.ParticleID {
	if p2 == nil {
		return n.executeLocal(p1, ev, elasticity, normal)
	}

	d := bc.Separation(p1.Position, p2.Position, ev.Time.Value())
	dist := d.Nrm()
	if dist == 0 {
		// Degenerate (exactly coincident): avoid dividing by zero. rHat is
		// then the zero vector, so no impulse is applied along it.
		dist = 1
	}
	rHat := d.Scale(1 / dist)
	vRel := p2.Velocity.Sub(p1.Velocity)
	vn := vRel.Dot(rHat)

	mu := reducedMass(p1.Mass, p2.Mass)

	switch ev.Kind {
	case sim.EventCore, sim.EventBounceBack:
		impulse := rHat.Scale(-(1 + elasticity) * vn * mu)
		p1.Velocity = p1.Velocity.Sub(impulse.Scale(1 / p1.Mass))
		p2.Velocity = p2.Velocity.Add(impulse.Scale(1 / p2.Mass))

	case sim.EventWellIn:
		// Entering the well adds the well depth to ½μvn² of relative KE
		// along the normal. For wellDepth >= 0 capture always succeeds;
		// this branch never turns the event into a BounceBack.
		newVnSq := vn*vn + 2*wellDepth/mu
		newVn := -math.Sqrt(math.Max(newVnSq, 0))
		delta := rHat.Scale((newVn - vn) * mu)
		p1.Velocity = p1.Velocity.Sub(delta.Scale(1 / p1.Mass))
		p2.Velocity = p2.Velocity.Add(delta.Scale(1 / p2.Mass))

	case sim.EventWellOut:
		newVnSq := vn*vn - 2*wellDepth/mu
		newVn := math.Sqrt(math.Max(newVnSq, 0))
		delta := rHat.Scale((newVn - vn) * mu)
		p1.Velocity = p1.Velocity.Sub(delta.Scale(1 / p1.Mass))
		p2.Velocity = p2.Velocity.Add(delta.Scale(1 / p2.Mass))

	case sim.EventStepIn, sim.EventStepOut:
		sign := 1.0
		if ev.Kind == sim.EventStepIn {
			sign = -1.0
		}
		newVnSq := vn*vn + sign*2*wellDepth/mu
		newVn := math.Copysign(math.Sqrt(math.Max(newVnSq, 0)), vn)
		delta := rHat.Scale((newVn - vn) * mu)
		p1.Velocity = p1.Velocity.Sub(delta.Scale(1 / p1.Mass))
		p2.Velocity = p2.Velocity.Add(delta.Scale(1 / p2.Mass))
	}

	return []sim.ParticleID{p1.ID, p2.ID}
}

// executeLocal reflects only the velocity component along the contact
// normal (mirroring the pair Core branch's r̂ reflection above), so a
// tangential or off-center hit on a Local keeps its tangential velocity
// component instead of having its entire velocity vector reversed — which
// is only correct for a purely radial approach.
func (n *NewtonianMCL) executeLocal(p *sim.Particle, ev sim.Event, elasticity float64, normal vecmath.Vec3) []sim.ParticleID {
	rHat := normal
	if rHat == (vecmath.Vec3{}) {
		// Degenerate fallback (no normal supplied): reflect the full
		// velocity, the prior radial-only behaviour.
		rHat = p.Velocity.Normalized()
	}
	vn := p.Velocity.Dot(rHat)
	p.Velocity = p.Velocity.Sub(rHat.Scale((1 + elasticity) * vn))
	return []sim.ParticleID{p.ID}
}

func reducedMass(m1, m2 float64) float64 {
	return (m1 * m2) / (m1 + m2)
}
