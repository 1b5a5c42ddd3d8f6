package sim

import "math"

// EventKind is the closed set of event types (base spec §3). A tagged enum
// rather than an open interface, per design note §9: the set never grows
// without a spec change.
type EventKind int

const (
	// EventNonEvent marks an event producing no physical change (cell
	// crossings use EventCellCrossing/EventVirtualCell instead, and nothing
	// in the module currently emits EventNonEvent); EventNone marks "nothing
	// was found" (e.g. PredictPair returning +Inf). They are kept distinct
	// per base spec §3.
	EventNone EventKind = iota
	EventCore
	EventBounceBack
	EventWellIn
	EventWellOut
	EventStepIn
	EventStepOut
	EventCellCrossing
	EventVirtualCell
	EventSysTicker
	EventNonEvent
)

func (k EventKind) String() string {
	switch k {
	case EventCore:
		return "Core"
	case EventBounceBack:
		return "BounceBack"
	case EventWellIn:
		return "WellIn"
	case EventWellOut:
		return "WellOut"
	case EventStepIn:
		return "StepIn"
	case EventStepOut:
		return "StepOut"
	case EventCellCrossing:
		return "CellCrossing"
	case EventVirtualCell:
		return "VirtualCell"
	case EventSysTicker:
		return "SysTicker"
	case EventNonEvent:
		return "NonEvent"
	default:
		return "None"
	}
}

// PartnerKind tags which variant an EventPartner holds.
type PartnerKind int

const (
	PartnerNone PartnerKind = iota
	PartnerParticle
	PartnerLocal
	PartnerGlobal
	PartnerSystem
)

// EventPartner is the tagged union of what a particle's earliest event is
// against: another particle, a Local, a Global (cell-crossing), a System
// ticker, or nothing.
type EventPartner struct {
	Kind PartnerKind
	ID   int // ParticleID, local id, global id, or system id, per Kind
}

// NoPartner is the zero-value "no partner" EventPartner.
var NoPartner = EventPartner{Kind: PartnerNone}

// Event is one predicted or pending occurrence (base spec §3).
type Event struct {
	Time     SimTime
	Particle ParticleID
	Partner  EventPartner
	Kind     EventKind

	// Counter is the partner's EventCounter at prediction time (for pair
	// events; the event's own particle's counter is held by the Sorter
	// slot itself, not here). An event popped from the Sorter is valid iff
	// Counter still equals the partner's current EventCounter.
	Counter uint64
}

// NoEvent is the sentinel "nothing predicted" event: +Inf time, EventNone.
var NoEvent = Event{Time: SimTime{value: math.Inf(1)}, Kind: EventNone}

// Less orders two events by time, used by interactions choosing the
// earliest of several candidate events for a pair.
func (e Event) Less(other Event) bool {
	return e.Time.Value() < other.Time.Value()
}
