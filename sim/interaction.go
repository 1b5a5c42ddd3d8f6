package sim

import "github.com/dynamd/dynamd/sim/boundary"

// CaptureState is the current step/well index a pair is bound at, for
// stepped and square-well potentials. NotCaptured (-1) means "not currently
// bound"; zero and above index the level the pair sits inside.
type CaptureState int

const NotCaptured CaptureState = -1

// Interaction is a pair potential: hard sphere, square well, stepped, or
// null. Implementations live in sub-packages and register a constructor
// under their XML Type string via InteractionConstructors (see
// sim/interactions/register.go).
type Interaction interface {
	// Range returns the maximum capture distance; pairs farther apart than
	// this under minimum-image separation are never candidates.
	Range() float64

	// GetEvent predicts the next event between p1 and p2, or returns
	// (NoEvent, false) if this interaction produces no event for the pair
	// at this time (e.g. already resolved, out of range).
	GetEvent(p1, p2 *Particle, systemTime SimTime, l Liouvillean, bc boundary.Condition) (Event, bool)

	// RunEvent applies the event's discontinuous velocity update to p1 and
	// p2 in place and returns which particles were mutated.
	RunEvent(p1, p2 *Particle, ev Event, l Liouvillean, bc boundary.Condition) []ParticleID

	// CaptureTest reports the capture state the interaction currently
	// tracks for the pair. Simulation.Initialise does not call it, and no
	// capture map is rebuilt from particle positions: capture maps start
	// empty and change only as well and step events execute.
	CaptureTest(p1, p2 *Particle, bc boundary.Condition) CaptureState

	// PairRange reports which ordered pairs this interaction governs.
	PairRange() IDPairRange
}

// IDPairRangeKind is the closed set of pair-range variants.
type IDPairRangeKind int

const (
	PairRangeAll IDPairRangeKind = iota
	PairRangeSingle
	PairRangeChain
	PairRangePair
)

// IDPairRange is a tagged variant deciding which ordered particle pairs an
// Interaction applies to (base spec §4.2); Locals use IDRange. Declaration order among
// a Simulation's interactions is priority order: the first whose range
// matches a pair wins.
type IDPairRange struct {
	Kind     IDPairRangeKind
	Group    int                 // for Single: the group id all members must share
	Set      map[int]bool        // for Pair: set of ids; both p1 and p2 must be members
	Chain    []ParticleID        // for Chain: a bonded sequence; matches adjacent ids only
	GroupOf  map[ParticleID]int  // for Single: per-particle group membership
}

// Matches reports whether the pair (id1, id2) falls within this range.
func (r IDPairRange) Matches(id1, id2 ParticleID) bool {
	switch r.Kind {
	case PairRangeAll:
		return true
	case PairRangeSingle:
		g1, ok1 := r.GroupOf[id1]
		g2, ok2 := r.GroupOf[id2]
		return ok1 && ok2 && g1 == r.Group && g2 == r.Group
	case PairRangePair:
		return r.Set[int(id1)] && r.Set[int(id2)]
	case PairRangeChain:
		for i := 0; i+1 < len(r.Chain); i++ {
			a, b := r.Chain[i], r.Chain[i+1]
			if (a == id1 && b == id2) || (a == id2 && b == id1) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IDRangeKind is the closed set of single-particle-applicability variants
// used by Local and System (base spec §4.2, generalised to singles).
type IDRangeKind int

const (
	IDRangeAll IDRangeKind = iota
	IDRangeSingle
	IDRangeSet
)

// IDRange decides which particles a Local or System applies to.
type IDRange struct {
	Kind  IDRangeKind
	ID    ParticleID
	Set   map[ParticleID]bool
}

// Matches reports whether id falls within this range.
func (r IDRange) Matches(id ParticleID) bool {
	switch r.Kind {
	case IDRangeAll:
		return true
	case IDRangeSingle:
		return id == r.ID
	case IDRangeSet:
		return r.Set[id]
	default:
		return false
	}
}

// InteractionConstructor builds an Interaction from parsed XML attributes.
// attrs carries the element's attribute map verbatim (sim/xmlio does the
// structural XML decode; interactions interpret their own attribute set).
type InteractionConstructor func(attrs map[string]string) (Interaction, error)

// InteractionConstructors is populated by sub-package init() functions,
// keyed by the XML Type attribute (e.g. "HardSphere"), breaking the import
// cycle between sim (which owns Interaction) and sim/interactions (which
// implements it) — the same idiom this codebase's predecessor used for
// NewKVStoreFromConfig and NewLatencyModelFunc.
var InteractionConstructors = map[string]InteractionConstructor{}
