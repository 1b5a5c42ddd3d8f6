// Package locals implements concrete Local wall types. Sphere is the only
// one the base spec's scenarios require (E4: a dropped ball bouncing off a
// fixed floor sphere) — grounded on sim/newtonian's PredictLocal primitive,
// which already carries the gravity-aware parabola-sphere kernel.
package locals

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// Sphere is a fixed, immovable spherical obstacle. Particles bounce off it
// elastically (scaled by Elasticity), never capture.
type Sphere struct {
	ID_        int
	Center     vecmath.Vec3
	Radius     float64
	Elasticity float64
	Applies    sim.IDRange
}

func NewSphere(id int, center vecmath.Vec3, radius, elasticity float64, applies sim.IDRange) *Sphere {
	return &Sphere{ID_: id, Center: center, Radius: radius, Elasticity: elasticity, Applies: applies}
}

func (s *Sphere) ID() int             { return s.ID_ }
func (s *Sphere) Range() sim.IDRange { return s.Applies }

func (s *Sphere) GetEvent(p *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	ev, ok := l.PredictLocal(p, systemTime, s.Center, s.Radius, false)
	if !ok {
		return sim.NoEvent, false
	}
	ev.Partner = sim.EventPartner{Kind: sim.PartnerLocal, ID: s.ID_}
	return ev, true
}

func (s *Sphere) RunEvent(p *sim.Particle, ev sim.Event, l sim.Liouvillean, bc boundary.Condition) []sim.ParticleID {
	normal := p.Position.Sub(s.Center).Normalized()
	return l.ExecuteEvent(p, nil, ev, bc, s.Elasticity, 0, normal)
}
