// Package sim provides the core event-driven molecular dynamics engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - particle.go: Particle state and the flat ParticleStore
//   - event.go: Event, EventKind, EventPartner — the tagged occurrence types
//   - liouvillean.go: streaming, pair/local event prediction, event execution
//   - scheduler.go: decides which neighbours a moved particle re-predicts against
//   - simulation.go: Simulation — owns everything, exposes Initialise/RunStep/Reset
//
// # Architecture
//
// The sim package defines interfaces and the event-loop driver; implementations
// of the open extension points live in sub-packages:
//   - sim/vecmath/: 3-vectors and polynomial root finders
//   - sim/kernels/: analytic ray-sphere / parabola-sphere intersection tests
//   - sim/boundary/: Periodic and Lees-Edwards boundary conditions
//   - sim/interactions/: HardSphere, SquareWell, Stepped, Null pair potentials
//   - sim/newtonian/: the canonical ballistic/gravitational Liouvillean
//   - sim/cells/: the cell-list neighbour Global
//   - sim/locals/: Sphere, a fixed spherical obstacle Local
//   - sim/systems/: Andersen, a velocity-rescale thermostat System
//   - sim/sorter/: the bounded priority queue (FELBoundedPQ + PELMinMax)
//   - sim/xmlio/: DYNAMOconfig XML (+ bzip2) and species/property YAML I/O
//   - sim/replex/: replica-exchange driver over multiple Simulations
//   - sim/testlattice/: FCC lattice + Maxwell-Boltzmann fixture builder
//
// Sub-packages register their implementations via init() functions that
// populate package-level factory maps/variables (InteractionConstructors,
// LocalConstructors, GlobalConstructors, SystemConstructors,
// NewLiouvilleanFunc), the same import-cycle-breaking idiom this codebase's
// predecessor used for KV-cache and latency-model plugins.
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - Liouvillean: Stream, PredictPair, PredictLocal, ExecuteEvent
//   - Interaction: Range, GetEvent, RunEvent, CaptureTest, PairRange
//   - Local, Global, System: wall/plane, cell-crossing, and ticker events
//   - Scheduler: Candidates, with Dumb and NeighbourList variants
package sim
