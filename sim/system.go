package sim

// System is a first-class sorter entry not tied to any particle —
// thermostat ticks, replica-exchange triggers (base spec §4.7). System
// events fire on a schedule and may mutate global state.
type System interface {
	// ID is this system event's identity within EventPartner{Kind: PartnerSystem}.
	ID() int

	// NextTick predicts this system's next firing time given the current
	// system time. Returns (+Inf, false) once the system is permanently
	// quiescent (rare; most Systems tick forever).
	NextTick(systemTime SimTime) (SimTime, bool)

	// Fire runs the system event (e.g. Andersen thermostat velocity
	// rescale) against the full particle store and returns the mutated ids.
	Fire(store *ParticleStore, systemTime SimTime, rng *PartitionedRNG) []ParticleID
}

// SystemConstructor builds a System from parsed XML attributes.
type SystemConstructor func(attrs map[string]string) (System, error)

// SystemConstructors is populated by sub-package init() functions, keyed by
// the XML Type attribute, same registry idiom as InteractionConstructors.
var SystemConstructors = map[string]SystemConstructor{}
