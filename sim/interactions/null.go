package interactions

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
)

// Null produces no events for any pair it governs — used to carve out an
// exclusion zone (e.g. a group whose members should never interact),
// mirroring the XML Type="Null" interaction the base spec's external
// interface section names (§6).
type Null struct {
	Range_ sim.IDPairRange
}

func NewNull(pairRange sim.IDPairRange) *Null { return &Null{Range_: pairRange} }

func (n *Null) Range() float64            { return 0 }
func (n *Null) PairRange() sim.IDPairRange { return n.Range_ }

func (n *Null) GetEvent(p1, p2 *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	return sim.NoEvent, false
}

func (n *Null) RunEvent(p1, p2 *sim.Particle, ev sim.Event, l sim.Liouvillean, bc boundary.Condition) []sim.ParticleID {
	return nil
}

func (n *Null) CaptureTest(p1, p2 *sim.Particle, bc boundary.Condition) sim.CaptureState {
	return sim.NotCaptured
}
