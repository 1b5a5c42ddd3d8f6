package interactions

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
)

// HardSphere is the simplest pair potential: an infinite repulsive core at
// separation Sigma, elastic on contact.
type HardSphere struct {
	Sigma      float64
	Elasticity float64
	Range_     sim.IDPairRange
}

func NewHardSphere(sigma, elasticity float64, pairRange sim.IDPairRange) *HardSphere {
	return &HardSphere{Sigma: sigma, Elasticity: elasticity, Range_: pairRange}
}

func (h *HardSphere) Range() float64        { return h.Sigma }
func (h *HardSphere) PairRange() sim.IDPairRange { return h.Range_ }

func (h *HardSphere) GetEvent(p1, p2 *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	return l.PredictPair(p1, p2, systemTime, bc, sim.EventCore, h.Sigma, false)
}

func (h *HardSphere) RunEvent(p1, p2 *sim.Particle, ev sim.Event, l sim.Liouvillean, bc boundary.Condition) []sim.ParticleID {
	return l.ExecuteEvent(p1, p2, ev, bc, h.Elasticity, 0, zeroNormal)
}

func (h *HardSphere) CaptureTest(p1, p2 *sim.Particle, bc boundary.Condition) sim.CaptureState {
	return sim.NotCaptured
}
