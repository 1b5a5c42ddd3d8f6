// Package testlattice builds the small set of fixed particle
// configurations the base spec's scenarios need (E1: 1372-particle FCC
// 7×7×7 at density 0.5; E5 reuses the same builder for reset-idempotence).
// Deliberately tiny and test-only: full lattice input-packers are an
// out-of-scope external collaborator (base spec §1 Non-goals).
package testlattice

import (
	"math"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// fccBasis is the four fractional-coordinate sites of one conventional FCC
// unit cell, in units of the cell edge length a.
var fccBasis = [4]vecmath.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0, Z: 0.5},
	{X: 0, Y: 0.5, Z: 0.5},
}

// BuildFCC lays out n×n×n conventional FCC cells (4n³ particles total) at
// the given reduced number density, draws Maxwell-Boltzmann velocities at
// the given reduced temperature (unit mass, via rng), and removes net
// momentum so the resulting configuration starts with momentum magnitude
// at machine precision (base spec scenario E1's < 1e-10 requirement).
// Returns the populated store and the cubic primary cell's edge length.
func BuildFCC(n int, density, temperature float64, rng *sim.PartitionedRNG) (*sim.ParticleStore, float64) {
	nAtoms := 4 * n * n * n
	volume := float64(nAtoms) / density
	edge := math.Cbrt(volume)
	a := edge / float64(n)

	store := sim.NewParticleStore(nAtoms)
	id := 0
	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			for iz := 0; iz < n; iz++ {
				origin := vecmath.Vec3{X: float64(ix) * a, Y: float64(iy) * a, Z: float64(iz) * a}
				for _, b := range fccBasis {
					store.Set(sim.Particle{
						ID:       sim.ParticleID(id),
						Position: origin.Add(b.Scale(a)),
						Mass:     1.0,
					})
					id++
				}
			}
		}
	}

	jitterRNG := rng.ForSubsystem(sim.SubsystemLatticeJitter)
	sigma := math.Sqrt(temperature)
	var sum vecmath.Vec3
	for _, pid := range store.All() {
		p := store.Get(pid)
		p.Velocity = vecmath.Vec3{
			X: jitterRNG.NormFloat64() * sigma,
			Y: jitterRNG.NormFloat64() * sigma,
			Z: jitterRNG.NormFloat64() * sigma,
		}
		sum = sum.Add(p.Velocity)
	}
	mean := sum.Scale(1.0 / float64(nAtoms))
	for _, pid := range store.All() {
		p := store.Get(pid)
		p.Velocity = p.Velocity.Sub(mean)
	}

	return store, edge
}
