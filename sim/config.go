package sim

import "github.com/dynamd/dynamd/sim/vecmath"

// BoundaryKind is the closed set of boundary condition types selectable in
// an ensemble configuration.
type BoundaryKind int

const (
	BoundaryPeriodic BoundaryKind = iota
	BoundaryLeesEdwards
)

// EnsembleConfig groups the constants that define a simulation's primary
// cell and boundary, parsed from the DYNAMOconfig XML's Simulation element.
type EnsembleConfig struct {
	PrimaryCellSize vecmath.Vec3
	NParticles      int
	Boundary        BoundaryKind
	ShearRate       float64 // γ̇, only meaningful when Boundary == BoundaryLeesEdwards
}

// CellConfig groups the neighbour-cell global's grid sizing parameters.
type CellConfig struct {
	RangeMax float64 // longest interaction range a cell edge must exceed
	Padding  float64 // δ added to RangeMax before choosing cell count
}

// SorterConfig groups the bounded priority queue's auto-tuning parameters.
type SorterConfig struct {
	BucketsPerParticle int     // N_buckets = BucketsPerParticle * n_particles, default 2
	InitialBucketWidth float64 // Δ_bucket before the running-median estimate has enough samples
	InnerHeapCapacity  int     // K in PELMinMax<K>, default 3
}

// ThermostatConfig groups the system-ticker rescale parameters for the
// Andersen-style velocity rescale SysTicker event.
type ThermostatConfig struct {
	Period      float64 // simulation-time interval between ticks, 0 disables
	Temperature float64 // target reduced temperature
}

// RunConfig groups the driver's stop conditions and the RNG seed, mirroring
// the teacher's config-grouping-struct idiom: one struct per concern,
// assembled by the CLI layer.
type RunConfig struct {
	EndEventCount int64   // 0 = unbounded, stop on EndTime instead
	EndTime       float64 // 0 = unbounded, stop on EndEventCount instead
	Seed          int64
}
