package sim

import (
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// Liouvillean combines free streaming and the geometric intersection math
// that predicts and executes impulsive collisions (base spec §4.1). The
// canonical implementation is sim/newtonian.NewtonianMCL, registered via
// init() into NewLiouvilleanFunc — the same import-cycle-breaking idiom as
// InteractionConstructors.
type Liouvillean interface {
	// Stream advances p's position in place by dt under its current
	// velocity (and this Liouvillean's acceleration field, if any). Pure
	// with respect to EventCounter: it never bumps it.
	Stream(p *Particle, dt float64)

	// PredictPair computes the smallest positive root of the encounter
	// polynomial between p1 and p2 for the given interaction kind under
	// the current boundary condition's minimum-image displacement.
	// Returns (NoEvent, false) if no such root exists.
	PredictPair(p1, p2 *Particle, systemTime SimTime, bc boundary.Condition, kind EventKind, d float64, invert bool) (Event, bool)

	// PredictLocal is the single-particle analogue of PredictPair, against
	// a fixed spherical shell of the given center and radius (a planar
	// wall is the d→∞, center-at-infinity limit and is not separately
	// modelled; the base spec's only concrete Local scenario, E4, is a
	// sphere). invert selects inner vs. outer shell, as in PredictPair.
	PredictLocal(p *Particle, systemTime SimTime, center vecmath.Vec3, d float64, invert bool) (Event, bool)

	// ExecuteEvent applies the discontinuous velocity update for the given
	// event kind between p1 and p2 (p2 may be nil for a Local event) and
	// returns the mutated particle ids. normal is the unit contact normal
	// to reflect about; only consulted for Local events (p2 == nil) — the
	// pair branch derives its own r̂ from bc.Separation(p1, p2) since both
	// particles' positions are already known. Callers executing a pair
	// event may pass the zero Vec3.
	ExecuteEvent(p1, p2 *Particle, ev Event, bc boundary.Condition, elasticity, wellDepth float64, normal vecmath.Vec3) []ParticleID
}

// NewLiouvilleanFunc is set by sim/newtonian's init() to break the import
// cycle between sim (owner of the Liouvillean interface) and sim/newtonian
// (its implementation) — mirrors this codebase's predecessor's
// NewLatencyModelFunc/NewKVStoreFromConfig registration pattern.
var NewLiouvilleanFunc func(gravity [3]float64) Liouvillean
