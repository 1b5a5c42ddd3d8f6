package cells

import (
	"testing"

	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/boundary"
	"github.com/dynamd/dynamd/sim/vecmath"
)

func TestList_RebuildAssignsCellsAndNeighboursAreSymmetric(t *testing.T) {
	l := New(vecmath.Vec3{X: 10, Y: 10, Z: 10}, 1.0, 0.0)
	particles := []sim.Particle{
		{ID: 0, Position: vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
		{ID: 1, Position: vecmath.Vec3{X: 0.6, Y: 0.5, Z: 0.5}},
		{ID: 2, Position: vecmath.Vec3{X: 8.5, Y: 8.5, Z: 8.5}},
	}
	l.Rebuild(particles)

	neighboursOf0 := l.Neighbours(&particles[0])
	found1 := false
	for _, id := range neighboursOf0 {
		if id == 2 {
			t.Error("particle 2 should not be a neighbour of particle 0 (far cell)")
		}
		if id == 1 {
			found1 = true
		}
	}
	if !found1 {
		t.Error("particle 1 (same cell) should be a neighbour of particle 0")
	}

	found0 := false
	for _, id := range l.Neighbours(&particles[1]) {
		if id == 0 {
			found0 = true
		}
	}
	if !found0 {
		t.Error("particle 0 should be a neighbour of particle 1 (symmetry)")
	}
}

func TestList_PredictCrossingBallistic(t *testing.T) {
	l := New(vecmath.Vec3{X: 10, Y: 10, Z: 10}, 1.0, 0.0)
	particles := []sim.Particle{
		{ID: 0, Position: vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Velocity: vecmath.Vec3{X: 1}},
	}
	l.Rebuild(particles)

	bc := boundary.Periodic{L: l.L}
	ev, ok := l.PredictCrossing(&particles[0], sim.NewSimTime(0), nil, bc)
	if !ok {
		t.Fatal("expected a predicted crossing")
	}
	if ev.Kind != sim.EventCellCrossing {
		t.Errorf("Kind = %v, want EventCellCrossing", ev.Kind)
	}
	if ev.Time.Value() <= 0 {
		t.Errorf("crossing time = %v, want > 0", ev.Time.Value())
	}
}

func TestList_HandleCrossingMovesParticleBetweenBins(t *testing.T) {
	l := New(vecmath.Vec3{X: 10, Y: 10, Z: 10}, 1.0, 0.0)
	particles := []sim.Particle{
		{ID: 0, Position: vecmath.Vec3{X: 0.99, Y: 0.5, Z: 0.5}, Velocity: vecmath.Vec3{X: 1}},
	}
	l.Rebuild(particles)
	startCell := particles[0].CurrentCell

	particles[0].Position.X = 1.01
	bc := boundary.Periodic{L: l.L}
	l.HandleCrossing(&particles[0], sim.Event{Kind: sim.EventCellCrossing}, bc)

	if particles[0].CurrentCell == startCell {
		t.Error("expected CurrentCell to change after crossing into the next cell")
	}
	for _, id := range l.bins[startCell] {
		if id == 0 {
			t.Error("particle should have been removed from its old bin")
		}
	}
}
