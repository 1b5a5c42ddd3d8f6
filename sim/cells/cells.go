// Package cells implements the canonical cell-list neighbour Global (base
// spec §4.4): a uniform 3D grid bounding pairwise candidates and emitting
// cell-crossing / shear virtual-image events. Grounded in structure on the
// teacher's pick-a-target dispatch pattern (sim/routing.go,
// sim/loadbalancer.go: score-and-pick over a fixed candidate set),
// generalised here from "pick an instance" to "pick a cell".
package cells

import (
	"math"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/vecmath"
)

// List is the cell-list Global. Not safe for concurrent use, consistent
// with the core's single-threaded cooperative model (base spec §5).
type List struct {
	L            vecmath.Vec3
	Nx, Ny, Nz   int
	CellSize     vecmath.Vec3
	Gravity      vecmath.Vec3 // acceleration field, for crossing-time prediction under gravity

	bins   [][]sim.ParticleID // flat array, index = ix + Nx*(iy + Ny*iz)
	cellOf map[sim.ParticleID]int
}

// New builds a List sized so every edge is >= rangeMax+padding, per base
// spec §4.4.
func New(l vecmath.Vec3, rangeMax, padding float64) *List {
	minEdge := rangeMax + padding
	nx := cellsAlong(l.X, minEdge)
	ny := cellsAlong(l.Y, minEdge)
	nz := cellsAlong(l.Z, minEdge)
	return &List{
		L:        l,
		Nx:       nx,
		Ny:       ny,
		Nz:       nz,
		CellSize: vecmath.Vec3{X: l.X / float64(nx), Y: l.Y / float64(ny), Z: l.Z / float64(nz)},
		cellOf:   make(map[sim.ParticleID]int),
	}
}

func cellsAlong(length, minEdge float64) int {
	if minEdge <= 0 || length <= 0 {
		return 1
	}
	n := int(math.Floor(length / minEdge))
	if n < 1 {
		n = 1
	}
	return n
}

func (c *List) coordsOf(pos vecmath.Vec3) (int, int, int) {
	ix := wrapCell(int(math.Floor(pos.X/c.CellSize.X)), c.Nx)
	iy := wrapCell(int(math.Floor(pos.Y/c.CellSize.Y)), c.Ny)
	iz := wrapCell(int(math.Floor(pos.Z/c.CellSize.Z)), c.Nz)
	return ix, iy, iz
}

func wrapCell(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (c *List) flatIndex(ix, iy, iz int) int {
	return ix + c.Nx*(iy+c.Ny*iz)
}

// Rebuild fully reconstructs cell membership from current positions.
func (c *List) Rebuild(particles []sim.Particle) {
	c.bins = make([][]sim.ParticleID, c.Nx*c.Ny*c.Nz)
	c.cellOf = make(map[sim.ParticleID]int, len(particles))
	for i := range particles {
		p := &particles[i]
		ix, iy, iz := c.coordsOf(p.Position)
		idx := c.flatIndex(ix, iy, iz)
		c.bins[idx] = append(c.bins[idx], p.ID)
		c.cellOf[p.ID] = idx
		p.CurrentCell = idx
	}
}

// Neighbours returns every particle sharing p's cell or one of its 26
// adjacent cells (PBC-wrapped).
func (c *List) Neighbours(p *sim.Particle) []sim.ParticleID {
	ix, iy, iz := c.coordsOf(p.Position)
	var out []sim.ParticleID
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				jx := wrapCell(ix+dx, c.Nx)
				jy := wrapCell(iy+dy, c.Ny)
				jz := wrapCell(iz+dz, c.Nz)
				idx := c.flatIndex(jx, jy, jz)
				for _, id := range c.bins[idx] {
					if id != p.ID {
						out = append(out, id)
					}
				}
			}
		}
	}
	return out
}

// PredictCrossing computes the earliest time at which p's trajectory
// exits its current cell along any of the three axes.
func (c *List) PredictCrossing(p *sim.Particle, systemTime sim.SimTime, l sim.Liouvillean, bc boundary.Condition) (sim.Event, bool) {
	ix, iy, iz := c.coordsOf(p.Position)
	lowX, highX := float64(ix)*c.CellSize.X, float64(ix+1)*c.CellSize.X
	lowY, highY := float64(iy)*c.CellSize.Y, float64(iy+1)*c.CellSize.Y
	lowZ, highZ := float64(iz)*c.CellSize.Z, float64(iz+1)*c.CellSize.Z

	best := math.Inf(1)
	crossesPrimaryY := false

	if dt, ok := timeToFace(p.Position.X, p.Velocity.X, c.Gravity.X, lowX, highX); ok && dt < best {
		best = dt
	}
	if dt, ok := timeToFace(p.Position.Y, p.Velocity.Y, c.Gravity.Y, lowY, highY); ok && dt < best {
		best = dt
		crossesPrimaryY = iy == 0 || iy == c.Ny-1
	}
	if dt, ok := timeToFace(p.Position.Z, p.Velocity.Z, c.Gravity.Z, lowZ, highZ); ok && dt < best {
		best = dt
	}

	if math.IsInf(best, 1) {
		return sim.NoEvent, false
	}

	kind := sim.EventCellCrossing
	if _, isShear := bc.(boundary.LeesEdwards); isShear && crossesPrimaryY {
		kind = sim.EventVirtualCell
	}

	return sim.Event{
		Time:     systemTime.Advance(best),
		Particle: p.ID,
		Partner:  sim.EventPartner{Kind: sim.PartnerGlobal},
		Kind:     kind,
	}, true
}

func timeToFace(x0, v, a, low, high float64) (float64, bool) {
	target := high
	if v < 0 {
		target = low
	}
	if v == 0 && a == 0 {
		return 0, false
	}
	c0 := x0 - target
	if a == 0 {
		if v == 0 {
			return 0, false
		}
		t := -c0 / v
		if t > 0 {
			return t, true
		}
		return 0, false
	}
	t0, t1, ok := vecmath.QuadraticRoots(c0, v, 0.5*a)
	if !ok {
		return 0, false
	}
	return vecmath.SmallestPositiveRoot(t0, t1)
}

// HandleCrossing updates p's cell membership (and, under shear, its
// velocity image) and returns the mutated particle.
func (c *List) HandleCrossing(p *sim.Particle, ev sim.Event, bc boundary.Condition) []sim.ParticleID {
	oldIdx, ok := c.cellOf[p.ID]
	if ok {
		c.removeFromBin(oldIdx, p.ID)
	}

	if ev.Kind == sim.EventVirtualCell {
		axis := 1 // y-axis, the only shearing axis the base spec names
		p.Velocity = p.Velocity.Add(bc.ImageVelocityOffset(axis, ev.Time.Value()))
	}

	ix, iy, iz := c.coordsOf(p.Position)
	idx := c.flatIndex(ix, iy, iz)
	c.bins[idx] = append(c.bins[idx], p.ID)
	c.cellOf[p.ID] = idx
	p.CurrentCell = idx

	return []sim.ParticleID{p.ID}
}

func (c *List) removeFromBin(idx int, id sim.ParticleID) {
	bin := c.bins[idx]
	for i, v := range bin {
		if v == id {
			c.bins[idx] = append(bin[:i], bin[i+1:]...)
			return
		}
	}
}
