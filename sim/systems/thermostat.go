// Package systems implements the base spec's System events (§4.7): first-
// class sorter entries not tied to any particle, firing on a fixed
// schedule and mutating global state. Andersen is the one concrete System
// the base spec names by example (§3 EventKind SysTicker comment:
// "thermostat rescale"), grounded on the teacher's seeded-rand.Rand
// generator idiom (sim/workload/generator.go's newRandFromSeed) rather than
// any periodic-tick code, since the corpus has no direct ticker precedent.
package systems

import (
	"math"

	"github.com/dynamd/dynamd/sim"
)

// Andersen is an Andersen-thermostat velocity rescale: every Period
// simulation-time units, every particle's velocity is redrawn from a
// Maxwell-Boltzmann distribution at Temperature (unit-mass reduced units),
// coupling the system to an implicit heat bath.
type Andersen struct {
	ID_         int
	Period      float64
	Temperature float64
	Applies     sim.IDRange
}

// NewAndersen constructs an Andersen thermostat System.
func NewAndersen(id int, period, temperature float64, applies sim.IDRange) *Andersen {
	return &Andersen{ID_: id, Period: period, Temperature: temperature, Applies: applies}
}

// NewAndersenFromConfig builds an Andersen thermostat from a ThermostatConfig,
// the grouped-struct shape sim/config.go defines for this System and sim/xmlio
// parses a System element's attributes into.
func NewAndersenFromConfig(id int, cfg sim.ThermostatConfig, applies sim.IDRange) *Andersen {
	return NewAndersen(id, cfg.Period, cfg.Temperature, applies)
}

func (a *Andersen) ID() int { return a.ID_ }

// NextTick fires every Period time units unconditionally; Period <= 0
// disables the thermostat (base spec §9 ThermostatConfig "Period 0
// disables").
func (a *Andersen) NextTick(systemTime sim.SimTime) (sim.SimTime, bool) {
	if a.Period <= 0 {
		return sim.NewSimTime(math.Inf(1)), false
	}
	elapsed := systemTime.Value()
	next := math.Floor(elapsed/a.Period)*a.Period + a.Period
	return systemTime.Advance(next - elapsed), true
}

// Fire redraws every applicable particle's velocity components from
// N(0, sqrt(Temperature/Mass)), the Maxwell-Boltzmann distribution at the
// thermostat's Temperature for each particle's mass, using the "thermostat" RNG subsystem
// (sim.SubsystemThermostat) for reproducibility.
func (a *Andersen) Fire(store *sim.ParticleStore, systemTime sim.SimTime, rng *sim.PartitionedRNG) []sim.ParticleID {
	draw := rng.ForSubsystem(sim.SubsystemThermostat)
	var mutated []sim.ParticleID
	for _, id := range store.All() {
		if !a.Applies.Matches(id) {
			continue
		}
		p := store.Get(id)
		sigma := math.Sqrt(a.Temperature / p.Mass)
		p.Velocity.X = draw.NormFloat64() * sigma
		p.Velocity.Y = draw.NormFloat64() * sigma
		p.Velocity.Z = draw.NormFloat64() * sigma
		mutated = append(mutated, id)
	}
	return mutated
}
