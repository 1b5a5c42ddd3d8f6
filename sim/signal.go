package sim

// ParticleEventSubscriber receives every executed (non-discarded) event
// touching a particle — the hook output/statistics plugins attach to (base
// spec §9 "Signals": "output plugins subscribe to ParticleEvent and
// SystemEvent... the signal fires synchronously").
type ParticleEventSubscriber func(ev Event)

// SystemEventSubscriber receives every executed System event.
type SystemEventSubscriber func(ev Event)

// Signal is the typed synchronous broadcast replacing the reference's
// intrusive signal, grounded on the teacher's sim/trace/trace.go decision
// recorder, generalised from "one recorder" to "N subscribers". Firing is
// synchronous and MUST NOT block, consistent with the core's
// single-threaded cooperative model (base spec §5).
type Signal struct {
	particleSubs []ParticleEventSubscriber
	systemSubs   []SystemEventSubscriber
}

// SubscribeParticle registers a subscriber for every executed particle
// (pair/local/cell-crossing) event.
func (s *Signal) SubscribeParticle(fn ParticleEventSubscriber) {
	s.particleSubs = append(s.particleSubs, fn)
}

// SubscribeSystem registers a subscriber for every executed System event.
func (s *Signal) SubscribeSystem(fn SystemEventSubscriber) {
	s.systemSubs = append(s.systemSubs, fn)
}

func (s *Signal) fireParticle(ev Event) {
	for _, fn := range s.particleSubs {
		fn(ev)
	}
}

func (s *Signal) fireSystem(ev Event) {
	for _, fn := range s.systemSubs {
		fn(ev)
	}
}
