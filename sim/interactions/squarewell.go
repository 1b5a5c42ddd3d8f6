package interactions

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
)

// SquareWell adds an attractive shell of depth WellDepth between SigmaCore
// and SigmaWell around a hard core (base spec §4.2/§4.1 WellIn/WellOut/
// BounceBack). Capture state is sparse: a pair not in captured is assumed
// outside the well.
type SquareWell struct {
	SigmaCore  float64
	SigmaWell  float64
	WellDepth  float64
	Elasticity float64
	Range_     sim.IDPairRange

	captured map[pairKey]bool
}

func NewSquareWell(sigmaCore, sigmaWell, wellDepth, elasticity float64, pairRange sim.IDPairRange) *SquareWell {
	return &SquareWell{
		SigmaCore:  sigmaCore,
		SigmaWell:  sigmaWell,
		WellDepth:  wellDepth,
		Elasticity: elasticity,
		Range_:     pairRange,
		captured:   make(map[pairKey]bool),
	}
}

func (s *SquareWell) Range() float64            { return s.SigmaWell }
func (s *SquareWell) PairRange() sim.IDPairRange { return s.Range_ }

func (s *SquareWell) GetEvent(p1, p2 *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	k := keyOf(p1.ID, p2.ID)

	coreEv, coreOK := l.PredictPair(p1, p2, systemTime, bc, sim.EventCore, s.SigmaCore, false)

	if s.captured[k] {
		outEv, outOK := l.PredictPair(p1, p2, systemTime, bc, sim.EventWellOut, s.SigmaWell, true)
		switch {
		case coreOK && outOK:
			if coreEv.Less(outEv) {
				return coreEv, true
			}
			return outEv, true
		case coreOK:
			return coreEv, true
		case outOK:
			return outEv, true
		default:
			return sim.NoEvent, false
		}
	}

	inEv, inOK := l.PredictPair(p1, p2, systemTime, bc, sim.EventWellIn, s.SigmaWell, false)
	switch {
	case coreOK && inOK:
		if coreEv.Less(inEv) {
			return coreEv, true
		}
		return inEv, true
	case coreOK:
		return coreEv, true
	case inOK:
		return inEv, true
	default:
		return sim.NoEvent, false
	}
}

func (s *SquareWell) RunEvent(p1, p2 *sim.Particle, ev sim.Event, l sim.Liouvillean, bc boundary.Condition) []sim.ParticleID {
	k := keyOf(p1.ID, p2.ID)

	switch ev.Kind {
	case sim.EventWellIn:
		// newtonian.ExecuteEvent's WellIn formula (newVnSq = vn²+2·wellDepth/mu)
		// always has a real, positive root for wellDepth >= 0 — an attractive
		// well can never fail to capture, so there is no KE threshold to gate
		// on here (unlike StepIn/StepOut, where DeltaU can have either sign).
		mutated := l.ExecuteEvent(p1, p2, ev, bc, s.Elasticity, s.WellDepth, zeroNormal)
		s.captured[k] = true
		return mutated

	case sim.EventWellOut:
		mutated := l.ExecuteEvent(p1, p2, ev, bc, s.Elasticity, s.WellDepth, zeroNormal)
		delete(s.captured, k)
		return mutated

	default: // Core or BounceBack
		return l.ExecuteEvent(p1, p2, ev, bc, s.Elasticity, 0, zeroNormal)
	}
}

func (s *SquareWell) CaptureTest(p1, p2 *sim.Particle, bc boundary.Condition) sim.CaptureState {
	if s.captured[keyOf(p1.ID, p2.ID)] {
		return 1
	}
	return sim.NotCaptured
}
