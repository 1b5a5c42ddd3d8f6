// Package interactions implements the base spec's closed set of pair
// potentials (HardSphere, SquareWell, Stepped, Null), each registering a
// constructor into sim.InteractionConstructors keyed by its XML Type
// string — the same init()-wiring idiom this codebase's predecessor used
// for sim/kv and sim/latency.
package interactions

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// zeroNormal is passed to Liouvillean.ExecuteEvent for pair events, which
// derive their own contact normal from both particles' positions — the
// normal parameter only matters for Local events.
var zeroNormal = vecmath.Vec3{}

// pairKey is the canonical (min, max) ordering used to key sparse
// capture-state maps (base spec §4.2: "keyed by (min(id1,id2), max(id1,id2))").
type pairKey struct {
	lo, hi sim.ParticleID
}

func keyOf(id1, id2 sim.ParticleID) pairKey {
	if id1 < id2 {
		return pairKey{id1, id2}
	}
	return pairKey{id2, id1}
}
