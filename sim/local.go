package sim

import "github.com/dynamd/dynamd/sim/boundary"

// Local is a wall/plane event source: a fixed geometric object a particle
// can collide with (base spec §4.2, generalised from Interaction to a
// single-particle collaborator). The concrete Local is sim/locals.Sphere;
// cell crossings are handled by the sim/cells Global, not by a Local.
type Local interface {
	// ID is this Local's identity within EventPartner{Kind: PartnerLocal}.
	ID() int

	// Range reports which particles this Local applies to.
	Range() IDRange

	// GetEvent predicts the next event for particle p against this Local.
	GetEvent(p *Particle, systemTime SimTime, l Liouvillean, bc boundary.Condition) (Event, bool)

	// RunEvent applies the event and returns the mutated particle set
	// (always just {p} for a true wall, but kept a slice for uniformity
	// with Interaction.RunEvent).
	RunEvent(p *Particle, ev Event, l Liouvillean, bc boundary.Condition) []ParticleID
}

// LocalConstructor builds a Local from parsed XML attributes.
type LocalConstructor func(attrs map[string]string) (Local, error)

// LocalConstructors is populated by sub-package init() functions, keyed by
// the XML Type attribute, same registry idiom as InteractionConstructors.
var LocalConstructors = map[string]LocalConstructor{}
