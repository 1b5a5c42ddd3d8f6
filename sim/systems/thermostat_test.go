package systems

import (
	"math"
	"testing"

	"github.com/dynamd/dynamd/sim"
)

func TestNewAndersenFromConfig_MapsFieldsThrough(t *testing.T) {
	a := NewAndersenFromConfig(3, sim.ThermostatConfig{Period: 2.5, Temperature: 0.7}, sim.IDRange{Kind: sim.IDRangeAll})
	if a.ID() != 3 || a.Period != 2.5 || a.Temperature != 0.7 {
		t.Errorf("NewAndersenFromConfig produced %+v, want ID=3 Period=2.5 Temperature=0.7", a)
	}
}

func TestAndersen_NextTickDisabledWhenPeriodZero(t *testing.T) {
	a := NewAndersen(0, 0, 1.0, sim.IDRange{Kind: sim.IDRangeAll})
	if _, ok := a.NextTick(sim.NewSimTime(5)); ok {
		t.Error("Period 0 should disable the thermostat")
	}
}

func TestAndersen_NextTickFiresOnPeriodBoundary(t *testing.T) {
	a := NewAndersen(0, 2.0, 1.0, sim.IDRange{Kind: sim.IDRangeAll})
	next, ok := a.NextTick(sim.NewSimTime(3.0))
	if !ok {
		t.Fatal("expected a next tick")
	}
	if math.Abs(next.Value()-4.0) > 1e-9 {
		t.Errorf("NextTick(3.0) = %v, want 4.0 (next period-2 boundary)", next.Value())
	}
}

func TestAndersen_FireRescalesVelocitiesDeterministically(t *testing.T) {
	store := sim.NewParticleStore(2)
	store.Set(sim.Particle{ID: 0, Mass: 1})
	store.Set(sim.Particle{ID: 1, Mass: 2})

	a := NewAndersen(0, 1.0, 2.0, sim.IDRange{Kind: sim.IDRangeAll})
	rngA := sim.NewPartitionedRNG(sim.NewSimulationKey(11))
	mutated := a.Fire(store, sim.NewSimTime(0), rngA)

	if len(mutated) != 2 {
		t.Fatalf("len(mutated) = %d, want 2", len(mutated))
	}
	v0 := store.Get(0).Velocity

	store2 := sim.NewParticleStore(2)
	store2.Set(sim.Particle{ID: 0, Mass: 1})
	store2.Set(sim.Particle{ID: 1, Mass: 2})
	rngB := sim.NewPartitionedRNG(sim.NewSimulationKey(11))
	a.Fire(store2, sim.NewSimTime(0), rngB)
	v0b := store2.Get(0).Velocity

	if v0 != v0b {
		t.Errorf("same-seed Fire() diverged: %+v vs %+v", v0, v0b)
	}
}

func TestAndersen_FireRespectsIDRange(t *testing.T) {
	store := sim.NewParticleStore(2)
	store.Set(sim.Particle{ID: 0, Mass: 1})
	store.Set(sim.Particle{ID: 1, Mass: 1})

	a := NewAndersen(0, 1.0, 2.0, sim.IDRange{Kind: sim.IDRangeSingle, ID: 0})
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(1))
	mutated := a.Fire(store, sim.NewSimTime(0), rng)

	if len(mutated) != 1 || mutated[0] != 0 {
		t.Errorf("mutated = %v, want only particle 0", mutated)
	}
	if store.Get(1).Velocity != (sim.Particle{}).Velocity {
		t.Error("particle 1 should not have been rescaled")
	}
}
