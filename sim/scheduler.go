package sim

import "fmt"

// Scheduler decides which other particles a mutated particle's pair events
// must be re-predicted against (base spec §4.6: "Re-prediction MUST
// include pair events against q's new cell neighbours"). Two variants
// exist, matching the reference: Dumb (re-predict against every other
// particle, O(N) per event) and NeighbourList (re-predict only against the
// cell global's current neighbourhood, canonical). Grounded on the
// teacher's InstanceScheduler interface-with-variants shape
// (FCFSScheduler/PriorityFCFSScheduler/SJFScheduler, NewScheduler(name)
// factory) — same shape, different variants, same factory-by-name idiom.
type Scheduler interface {
	Candidates(sim *Simulation, p *Particle) []ParticleID
}

// DumbScheduler re-predicts every mutated particle against the full
// particle store. Useful for small systems and as a correctness baseline
// against NeighbourListScheduler.
type DumbScheduler struct{}

func (DumbScheduler) Candidates(s *Simulation, p *Particle) []ParticleID {
	all := s.Particles.All()
	out := make([]ParticleID, 0, len(all)-1)
	for _, id := range all {
		if id != p.ID {
			out = append(out, id)
		}
	}
	return out
}

// NeighbourListScheduler re-predicts only against the cell global's
// current neighbourhood (self's cell + 26 periodic adjacent cells; no shear
// shift is applied under Lees-Edwards) — the canonical choice for any system large
// enough for the cell list to pay for itself.
type NeighbourListScheduler struct{}

func (NeighbourListScheduler) Candidates(s *Simulation, p *Particle) []ParticleID {
	if s.Global == nil {
		return DumbScheduler{}.Candidates(s, p)
	}
	return s.Global.Neighbours(p)
}

// NewScheduler creates a Scheduler by name. Valid names: "neighbour-list"
// (default, canonical), "dumb". Panics on unrecognized names, matching the
// teacher's NewScheduler(name) factory.
func NewScheduler(name string) Scheduler {
	switch name {
	case "", "neighbour-list":
		return NeighbourListScheduler{}
	case "dumb":
		return DumbScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
}
