package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical event sequences (base spec §8
// property 6, reset idempotence).
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemThermostat is the RNG subsystem for Andersen-thermostat /
	// velocity-rescale system ticker draws. Uses the master seed directly
	// for backward compatibility with single-subsystem runs.
	SubsystemThermostat = "thermostat"

	// SubsystemLatticeJitter is the RNG subsystem for the FCC test lattice
	// builder's small position/velocity perturbations.
	SubsystemLatticeJitter = "lattice-jitter"

	// SubsystemReplex is a reserved RNG subsystem name for replica
	// exchange; sim/replex draws its swap acceptances from
	// SubsystemReplica streams instead.
	SubsystemReplex = "replex"
)

// SubsystemReplica returns the subsystem name for an independent RNG stream
// numbered id (used by sim/replex for the swap acceptance draw of the
// replica pair starting at index id).
func SubsystemReplica(id int) string {
	return fmt.Sprintf("replica_%d", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem.
//
// Derivation formula:
//   - For SubsystemThermostat: uses masterSeed directly (backward
//     compatibility with single-subsystem configurations)
//   - For all other subsystems: splitmix64(masterSeed XOR fnv1a64(name)),
//     re-mixed against a running collision counter on the rare case that
//     two names derive the same seed
//
// A bare XOR of the two hashes (masterSeed, fnv1a64(name)) is what a
// single-stream-per-run design can get away with, but EDMD replica-exchange
// (base spec §5) runs many independent streams off the one master key at
// once — one per replica pair's acceptance draw (SubsystemReplica), plus
// per-run subsystems like the thermostat and lattice jitter — and a bare
// XOR gives no guarantee two of those names don't happen to alias onto the
// same derived seed, silently correlating streams the caller assumes are
// independent. splitmix64 scrambles the combined bits properly, and
// issuedSeeds/collisions catch and perturb the rare remaining collision.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine,
// consistent with the core's single-threaded cooperative model (base spec
// §5).
type PartitionedRNG struct {
	key         SimulationKey
	subsystems  map[string]*rand.Rand
	issuedSeeds map[int64]bool
	collisions  uint64
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:         key,
		subsystems:  make(map[string]*rand.Rand),
		issuedSeeds: make(map[int64]bool),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemThermostat {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = splitmix64(uint64(p.key) ^ uint64(fnv1a64(name)))
		for p.issuedSeeds[derivedSeed] {
			p.collisions++
			derivedSeed = splitmix64(uint64(derivedSeed) + p.collisions)
		}
	}

	p.issuedSeeds[derivedSeed] = true
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// Collisions reports how many times a derived seed had to be re-mixed
// against an already-issued one, a diagnostic for how much subsystem-name
// pressure a run is putting on the derivation (expected to stay at 0 for
// any realistic number of subsystems).
func (p *PartitionedRNG) Collisions() uint64 {
	return p.collisions
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// splitmix64 is the standard SplitMix64 bit-mixer, used here to scramble a
// combined (masterSeed, subsystem-hash) pair into a well-distributed seed
// rather than relying on their raw XOR.
func splitmix64(x uint64) int64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
