package sim

import "github.com/dynamd/dynamd/sim/vecmath"

// ParticleID indexes a Particle in a Simulation's ParticleStore.
type ParticleID int

// Particle is the mutable state of one simulated body (base spec §3).
// Positions are always kept in the primary cell under periodic BCs; no
// image counting is required since EDMD only ever needs minimum-image
// separations, never absolute displacement.
type Particle struct {
	ID       ParticleID
	Position vecmath.Vec3
	Velocity vecmath.Vec3

	// EventCounter is the invalidation key (base spec §3): it increments
	// every time the Liouvillean changes this particle's trajectory. A
	// pending Event's stored Counter must match the partner's current
	// EventCounter for the event to still be valid at pop time.
	EventCounter uint64

	// CurrentCell is the id of the neighbour-list cell this particle's
	// Position falls in (base spec §3 Cells invariant); owned and kept in
	// sync by the Global cell-list implementation.
	CurrentCell int

	// Mass is looked up from the Properties table at initialise-time and
	// held per-particle for O(1) access during event execution.
	Mass float64
}

// ParticleStore is the flat particle array the Simulation owns. Particles
// are created once at initialise-time and persist for the run (base spec
// §3 Lifecycle): there is no growth, so a plain slice indexed by
// ParticleID suffices — no map indirection in the hot path.
type ParticleStore struct {
	particles []Particle
}

// NewParticleStore allocates a store for exactly n particles.
func NewParticleStore(n int) *ParticleStore {
	return &ParticleStore{particles: make([]Particle, n)}
}

// Len returns the number of particles.
func (ps *ParticleStore) Len() int { return len(ps.particles) }

// Get returns a pointer to the particle with the given id, for in-place
// mutation by the Liouvillean/Scheduler.
func (ps *ParticleStore) Get(id ParticleID) *Particle {
	return &ps.particles[id]
}

// All returns every particle id, for bootstrap / rebuild passes.
func (ps *ParticleStore) All() []ParticleID {
	ids := make([]ParticleID, len(ps.particles))
	for i := range ps.particles {
		ids[i] = ParticleID(i)
	}
	return ids
}

// Set installs particle p at its own ID's slot (used during initialise).
func (ps *ParticleStore) Set(p Particle) {
	ps.particles[p.ID] = p
}

// Bump increments a particle's EventCounter, marking every previously
// predicted event referencing it as stale. Returns the new counter value.
func (ps *ParticleStore) Bump(id ParticleID) uint64 {
	ps.particles[id].EventCounter++
	return ps.particles[id].EventCounter
}
