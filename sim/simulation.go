package sim

import (
	"fmt"

	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/sorter"
)

// Simulation owns every subsystem and drives the core event loop (base spec
// §4.6). Grounded on the teacher's Simulator struct-owns-all-subsystems +
// Run() loop shape (sim/simulator.go), generalised from request/batch
// scheduling to EDMD event prediction/execution.
type Simulation struct {
	Ensemble EnsembleConfig
	RunCfg   RunConfig

	Particles    *ParticleStore
	Boundary     boundary.Condition
	Dynamics     Liouvillean
	Interactions []Interaction
	Locals       []Local
	Global       Global
	Systems      []System
	Scheduler    Scheduler

	Metrics *Metrics
	Signal  *Signal
	RNG     *PartitionedRNG

	SystemTime SimTime
	EventCount int64

	sorter   *sorter.Sorter
	shutdown bool
}

// NewSimulation assembles a Simulation from its configured subsystems. The
// Sorter itself is built here from SorterConfig since sim/sorter is
// deliberately decoupled from sim (it cannot construct one from sim's own
// config type without importing sim, which would cycle back to
// sim.Simulation holding a *sorter.Sorter).
func NewSimulation(ens EnsembleConfig, runCfg RunConfig, sorterCfg SorterConfig,
	particles *ParticleStore, bc boundary.Condition, dynamics Liouvillean,
	interactions []Interaction, locals []Local, global Global, systems []System, sched Scheduler) *Simulation {

	return &Simulation{
		Ensemble:     ens,
		RunCfg:       runCfg,
		Particles:    particles,
		Boundary:     bc,
		Dynamics:     dynamics,
		Interactions: interactions,
		Locals:       locals,
		Global:       global,
		Systems:      systems,
		Scheduler:    sched,
		Metrics:      &Metrics{},
		Signal:       &Signal{},
		RNG:          NewPartitionedRNG(NewSimulationKey(runCfg.Seed)),
		SystemTime:   NewSimTime(0),
		sorter: sorter.New(particles.Len(), sorter.Config{
			BucketsPerParticle: sorterCfg.BucketsPerParticle,
			InitialBucketWidth: sorterCfg.InitialBucketWidth,
			InnerHeapCapacity:  sorterCfg.InnerHeapCapacity,
		}, 0),
	}
}

// toItem wraps an Event for storage in the decoupled Sorter.
func toItem(ev Event) sorter.Item { return sorter.Item{Time: ev.Time.Value(), Value: ev} }

// fromItem unwraps a Sorter Item back into an Event.
func fromItem(it sorter.Item) Event { return it.Value.(Event) }

// getInteraction returns the first Interaction (in declaration order)
// whose PairRange matches (id1, id2), or nil if none governs the pair.
func (s *Simulation) getInteraction(id1, id2 ParticleID) Interaction {
	for _, inter := range s.Interactions {
		if inter.PairRange().Matches(id1, id2) {
			return inter
		}
	}
	return nil
}

func (s *Simulation) getLocal(id int) Local {
	for _, l := range s.Locals {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

func (s *Simulation) getSystem(id int) System {
	for _, sys := range s.Systems {
		if sys.ID() == id {
			return sys
		}
	}
	return nil
}

// Initialise rebuilds the cell global, predicts every particle's and
// system's first event, and populates the Sorter from scratch (base spec
// §4.6 "Initialisation").
func (s *Simulation) Initialise() {
	if s.Global != nil {
		s.Global.Rebuild(s.Particles.particles)
	}
	for _, id := range s.Particles.All() {
		s.predictParticle(id)
	}
	for _, sysEv := range s.Systems {
		s.predictSystem(sysEv)
	}
}

// predictParticle clears and repopulates particle id's Sorter entry with
// the earliest of: pair events against the Scheduler's candidate set, local
// events against every applicable Local, and the next cell-crossing.
func (s *Simulation) predictParticle(id ParticleID) {
	s.sorter.Clear(int64(id))
	p := s.Particles.Get(id)

	for _, otherID := range s.Scheduler.Candidates(s, p) {
		inter := s.getInteraction(id, otherID)
		if inter == nil {
			continue
		}
		other := s.Particles.Get(otherID)
		ev, ok := inter.GetEvent(p, other, s.SystemTime, s.Dynamics, s.Boundary)
		if ok {
			s.sorter.Push(int64(id), toItem(ev))
		}
	}

	for _, l := range s.Locals {
		if !l.Range().Matches(id) {
			continue
		}
		ev, ok := l.GetEvent(p, s.SystemTime, s.Dynamics, s.Boundary)
		if ok {
			s.sorter.Push(int64(id), toItem(ev))
		}
	}

	if s.Global != nil {
		ev, ok := s.Global.PredictCrossing(p, s.SystemTime, s.Dynamics, s.Boundary)
		if ok {
			s.sorter.Push(int64(id), toItem(ev))
		}
	}
}

// systemSorterBase offsets System ids into a private region of the int64
// id space the Sorter uses, so system tickers can share the same Sorter
// instance as particles without colliding with ParticleID 0..N-1.
const systemSorterBase = int64(1) << 32

func (s *Simulation) predictSystem(sys System) {
	key := systemSorterBase + int64(sys.ID())
	s.sorter.Clear(key)
	t, ok := sys.NextTick(s.SystemTime)
	if !ok {
		return
	}
	ev := Event{Time: t, Partner: EventPartner{Kind: PartnerSystem, ID: sys.ID()}, Kind: EventSysTicker}
	s.sorter.Push(key, toItem(ev))
}

// RunStep pops and executes the single globally-earliest valid event,
// discarding any stale (invalidated-by-counter) events first. Returns false
// once the Sorter is exhausted.
func (s *Simulation) RunStep() bool {
	for {
		it, id, ok := s.sorter.Top()
		if !ok {
			return false
		}
		ev := fromItem(it)

		if ev.Partner.Kind == PartnerParticle {
			partner := s.Particles.Get(ParticleID(ev.Partner.ID))
			if ev.Counter != partner.EventCounter {
				// Stale: the partner moved since this event was predicted.
				s.sorter.Pop()
				continue
			}
		}

		s.executeEvent(id, ev)
		return true
	}
}

func (s *Simulation) executeEvent(ownerKey int64, ev Event) {
	dt := ev.Time.Value() - s.SystemTime.Value()
	s.SystemTime = ev.Time
	s.sorter.Pop()

	if ev.Partner.Kind == PartnerSystem {
		s.fireSystemEvent(ev)
		return
	}

	id := ParticleID(ownerKey)
	p := s.Particles.Get(id)
	s.Dynamics.Stream(p, dt)

	var mutated []ParticleID
	switch ev.Partner.Kind {
	case PartnerParticle:
		partnerID := ParticleID(ev.Partner.ID)
		partner := s.Particles.Get(partnerID)
		s.Dynamics.Stream(partner, dt)
		inter := s.getInteraction(id, partnerID)
		if inter == nil {
			physicalError(s.EventCount, s.SystemTime.Value(), "no interaction governs pair at pop time", id, partnerID)
		}
		mutated = inter.RunEvent(p, partner, ev, s.Dynamics, s.Boundary)

	case PartnerLocal:
		l := s.getLocal(ev.Partner.ID)
		if l == nil {
			physicalError(s.EventCount, s.SystemTime.Value(), fmt.Sprintf("no Local with id %d", ev.Partner.ID), id)
		}
		mutated = l.RunEvent(p, ev, s.Dynamics, s.Boundary)

	case PartnerGlobal:
		mutated = s.Global.HandleCrossing(p, ev, s.Boundary)

	default:
		mutated = []ParticleID{id}
	}

	s.Metrics.RecordEvent(dt)
	for _, m := range mutated {
		s.Particles.Bump(m)
		s.predictParticle(m)
	}
	s.EventCount++
	s.Signal.fireParticle(ev)
}

func (s *Simulation) fireSystemEvent(ev Event) {
	sys := s.getSystem(ev.Partner.ID)
	if sys == nil {
		physicalError(s.EventCount, s.SystemTime.Value(), fmt.Sprintf("no System with id %d", ev.Partner.ID))
	}
	mutated := sys.Fire(s.Particles, s.SystemTime, s.RNG)
	for _, m := range mutated {
		s.Particles.Bump(m)
		s.predictParticle(m)
	}
	s.predictSystem(sys)
	s.EventCount++
	s.Signal.fireSystem(ev)
}

// ShouldStop reports whether the configured stop condition (event count or
// system time) has been reached.
func (s *Simulation) ShouldStop() bool {
	if s.shutdown {
		return true
	}
	if s.RunCfg.EndEventCount > 0 && s.EventCount >= s.RunCfg.EndEventCount {
		return true
	}
	if s.RunCfg.EndTime > 0 && s.SystemTime.Value() >= s.RunCfg.EndTime {
		return true
	}
	return false
}

// Shutdown requests the run loop stop at the next opportunity.
func (s *Simulation) Shutdown() { s.shutdown = true }

// RunLoop drives RunStep until ShouldStop or the Sorter is exhausted.
func (s *Simulation) RunLoop() {
	for !s.ShouldStop() {
		if !s.RunStep() {
			return
		}
	}
}

// Rebuild discards and re-predicts every Sorter entry from the current
// particle state without touching the RNG or event count — the narrower
// operation replica-exchange swaps need (base spec §5: a swap "MUST leave
// both simulations in a consistent state with invalidated sorters that get
// rebuilt before the next event"), as opposed to Reset's full restart.
func (s *Simulation) Rebuild() {
	s.sorter.Reset()
	s.Initialise()
}

// Reset reseeds the RNG from the same seed and re-initialises prediction
// state, without touching particle positions/velocities — used to verify
// reset idempotence (base spec §8 property 6): two Simulations reset from
// the same seed and state must produce bit-identical subsequent event
// sequences.
func (s *Simulation) Reset() {
	s.RNG = NewPartitionedRNG(NewSimulationKey(s.RunCfg.Seed))
	s.sorter.Reset()
	s.EventCount = 0
	s.shutdown = false
	s.Initialise()
}
