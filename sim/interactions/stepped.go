package interactions

import (
	"sort"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
)

// Step is one level of a Stepped potential's staircase: entering Radius
// from outside costs DeltaU of relative KE (a negative DeltaU is
// attractive, positive is repulsive), mirroring the base spec's "staircase
// of (radius, ΔU) levels" (§4.1 StepIn/StepOut).
type Step struct {
	Radius  float64
	DeltaU  float64
}

// Stepped generalises SquareWell to an arbitrary number of shells. NewStepped
// sorts Steps into descending Radius order (outermost first); the
// current step index per pair is tracked lazily in a sparse map, as the
// base spec requires for all stepped potentials (§4.2 Capture state).
type Stepped struct {
	Steps      []Step
	Elasticity float64
	Range_     sim.IDPairRange

	stepIndex map[pairKey]int // index into Steps the pair currently sits inside; -1 = outside all steps
}

func NewStepped(steps []Step, elasticity float64, pairRange sim.IDPairRange) *Stepped {
	sorted := append([]Step(nil), steps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Radius > sorted[j].Radius })
	return &Stepped{
		Steps:      sorted,
		Elasticity: elasticity,
		Range_:     pairRange,
		stepIndex:  make(map[pairKey]int),
	}
}

func (s *Stepped) Range() float64 {
	if len(s.Steps) == 0 {
		return 0
	}
	return s.Steps[0].Radius
}

func (s *Stepped) PairRange() sim.IDPairRange { return s.Range_ }

func (s *Stepped) currentIndex(k pairKey) int {
	if idx, ok := s.stepIndex[k]; ok {
		return idx
	}
	return -1
}

func (s *Stepped) GetEvent(p1, p2 *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	k := keyOf(p1.ID, p2.ID)
	idx := s.currentIndex(k)

	var best sim.Event
	found := false

	// Inward event: crossing into the next-smaller step. There is no core
	// event; at the innermost step no inward event is predicted.
	if idx+1 < len(s.Steps) {
		ev, ok := l.PredictPair(p1, p2, systemTime, bc, sim.EventStepIn, s.Steps[idx+1].Radius, false)
		if ok && (!found || ev.Less(best)) {
			best, found = ev, true
		}
	}

	// Outward event: crossing back out of the current step.
	if idx >= 0 {
		ev, ok := l.PredictPair(p1, p2, systemTime, bc, sim.EventStepOut, s.Steps[idx].Radius, true)
		if ok && (!found || ev.Less(best)) {
			best, found = ev, true
		}
	}

	return best, found
}

func (s *Stepped) RunEvent(p1, p2 *sim.Particle, ev sim.Event, l sim.Liouvillean, bc boundary.Condition) []sim.ParticleID {
	k := keyOf(p1.ID, p2.ID)
	idx := s.currentIndex(k)

	var deltaU float64
	switch ev.Kind {
	case sim.EventStepIn:
		deltaU = s.Steps[idx+1].DeltaU
	case sim.EventStepOut:
		deltaU = s.Steps[idx].DeltaU
	}

	mutated := l.ExecuteEvent(p1, p2, ev, bc, s.Elasticity, deltaU, zeroNormal)

	switch ev.Kind {
	case sim.EventStepIn:
		s.stepIndex[k] = idx + 1
	case sim.EventStepOut:
		if idx <= 0 {
			delete(s.stepIndex, k)
		} else {
			s.stepIndex[k] = idx - 1
		}
	}

	return mutated
}

func (s *Stepped) CaptureTest(p1, p2 *sim.Particle, bc boundary.Condition) sim.CaptureState {
	idx := s.currentIndex(keyOf(p1.ID, p2.ID))
	if idx < 0 {
		return sim.NotCaptured
	}
	return sim.CaptureState(idx)
}
