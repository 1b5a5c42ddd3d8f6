package sim

import "github.com/dynamd/dynamd/sim/boundary"

// Global is a virtual-event producer operating over all particles at once —
// the cell-list neighbour structure is the canonical (and only) Global the
// base spec calls for (§4.4). A Global's events carry no physical change by
// themselves (EventCellCrossing, EventVirtualCell); they exist to keep the
// candidate neighbour set current and, under shear, to apply the image
// velocity offset a particle picks up crossing a sliding boundary.
type Global interface {
	// PredictCrossing returns the next cell-crossing (or virtual shear-image)
	// event for particle p.
	PredictCrossing(p *Particle, systemTime SimTime, l Liouvillean, bc boundary.Condition) (Event, bool)

	// HandleCrossing updates p's current cell (and velocity image, under
	// shear) and returns the mutated particle set.
	HandleCrossing(p *Particle, ev Event, bc boundary.Condition) []ParticleID

	// Neighbours returns the ids of particles sharing p's cell or one of
	// its 26 periodic adjacent cells — the candidate set the Scheduler
	// re-predicts pair events against after p moves. No shear shift is
	// applied to the adjacent-cell set under Lees-Edwards boundaries.
	Neighbours(p *Particle) []ParticleID

	// Rebuild fully reconstructs the cell lists from current particle
	// positions (used at Simulation.Initialise and after Reset).
	Rebuild(particles []Particle)
}

// GlobalConstructor builds a Global from parsed XML attributes and the
// ensemble configuration (the cell global uses the primary cell size, plus
// its own RangeMax/Padding attributes, to choose its grid).
type GlobalConstructor func(attrs map[string]string, ens EnsembleConfig) (Global, error)

// GlobalConstructors is populated by sub-package init() functions, keyed by
// the XML Type attribute, same registry idiom as InteractionConstructors.
var GlobalConstructors = map[string]GlobalConstructor{}
