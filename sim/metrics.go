// Tracks simulation-wide performance metrics: mean free time, kinetic
// energy, and momentum (base spec §8's testable properties).

package sim

import (
	"fmt"
	"math"
)

// Metrics aggregates simulation-wide statistics for final reporting,
// grounded on the teacher's accumulate-then-print Metrics struct: running
// sums updated incrementally as events execute, printed once at the end.
type Metrics struct {
	EventCount    int64
	TotalFreeTime float64 // sum of inter-event Δt across all executed (non-discarded) events
	KineticEnergy float64 // current Σ ½m|v|², refreshed via Recompute
	Momentum      Vec3Sum
}

// Vec3Sum is a running 3-vector sum, kept as three independent floats so
// Metrics doesn't need to import vecmath for what is otherwise a tiny
// accumulator.
type Vec3Sum struct {
	X, Y, Z float64
}

func (v *Vec3Sum) Add(x, y, z float64) {
	v.X += x
	v.Y += y
	v.Z += z
}

func (v Vec3Sum) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// RecordEvent updates the event count and mean-free-time accumulator for
// one executed (non-discarded) event.
func (m *Metrics) RecordEvent(dt float64) {
	m.EventCount++
	m.TotalFreeTime += dt
}

// MeanFreeTime returns TotalFreeTime / EventCount: the mean interval between
// consecutive executed particle events across the whole system, over all
// event kinds (cell crossings included). It is not normalised per particle.
func (m *Metrics) MeanFreeTime() float64 {
	if m.EventCount == 0 {
		return 0
	}
	return m.TotalFreeTime / float64(m.EventCount)
}

// Recompute walks the full particle store to refresh KineticEnergy and
// Momentum from scratch — called on demand (e.g. at the end of a run) rather than incrementally,
// since re-deriving KE/momentum from position+velocity after the fact is
// simpler than threading a ΔKE/Δp out of every interaction's RunEvent.
func (m *Metrics) Recompute(store *ParticleStore) {
	m.KineticEnergy = 0
	m.Momentum = Vec3Sum{}
	for _, id := range store.All() {
		p := store.Get(id)
		v := p.Velocity
		m.KineticEnergy += 0.5 * p.Mass * v.Dot(v)
		m.Momentum.Add(p.Mass*v.X, p.Mass*v.Y, p.Mass*v.Z)
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(systemTime float64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Events executed      : %d\n", m.EventCount)
	fmt.Printf("System time          : %.6f\n", systemTime)
	fmt.Printf("Mean free time       : %.6f\n", m.MeanFreeTime())
	fmt.Printf("Kinetic energy       : %.6f\n", m.KineticEnergy)
	fmt.Printf("Momentum magnitude   : %.6e\n", m.Momentum.Magnitude())
}
