package system

import (
	"math/rand"
	"testing"

	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/gamemap"
	"space-trader/internal/invariant"
)

// newSim builds a w×h open-space simulation with no entities.
func newSim(w, h int) *Sim {
	m := gamemap.New(w, h)
	m.Fill(gamemap.TileSpace)
	m.RecomputeBlocking()
	return NewSim(ecs.NewWorld(), m, rand.New(rand.NewSource(1)))
}

func playerStats() component.ShipStats {
	return component.ShipStats{
		Fuel: 100, Speed: 2, Storage: 1000,
		CurrHealth: 10, MaxHealth: 10, HealthRegen: 10,
		CurrShields: 5, MaxShields: 5, ShieldRegen: 1,
		MeleeSpeed: 2, MeleeDmg: 4, RangedSpeed: 5, RangedDmg: 1,
	}
}

func pirateStats() component.ShipStats {
	return component.ShipStats{
		Speed: 4, Storage: 50,
		CurrHealth: 3, MaxHealth: 3,
		CurrShields: 4, MaxShields: 4,
		Armor: 2, MeleeSpeed: 4, MeleeDmg: 1, RangedSpeed: 20, RangedDmg: 1,
	}
}

// addPlayer places the player ship at (x, y) and records it on the sim.
func addPlayer(s *Sim, x, y int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.TagPlayer{})
	s.World.Add(id, component.TagShip{})
	s.World.Add(id, component.Name{Short: "Enterprise"})
	s.World.Add(id, playerStats())
	s.World.Add(id, component.WaitTimer{})
	s.World.Add(id, component.Cargo{})
	s.Player = id
	return id
}

// addPirate places a blocking pirate with zero wait at (x, y).
func addPirate(s *Sim, x, y int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.TagPirate{})
	s.World.Add(id, component.TagShip{})
	s.World.Add(id, component.TagBlockTile{})
	s.World.Add(id, component.Name{Short: "Small Pirate"})
	s.World.Add(id, pirateStats())
	s.World.Add(id, component.WaitTimer{})
	return id
}

func posOf(t *testing.T, s *Sim, id ecs.EntityID) gamemap.Position {
	t.Helper()
	p, ok := s.position(id)
	if !ok {
		t.Fatalf("entity %v has no position", id)
	}
	return p
}

func healthOf(s *Sim, id ecs.EntityID) int {
	st, _ := s.stats(id)
	return st.CurrHealth
}

// expectViolation runs fn and fails unless it raises an invariant violation
// in the given phase.
func expectViolation(t *testing.T, phase string, fn func()) {
	t.Helper()
	var err error
	func() {
		defer invariant.Recover(&err)
		fn()
	}()
	v, ok := invariant.As(err)
	if !ok {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	if v.Phase != phase {
		t.Fatalf("violation phase = %q, want %q", v.Phase, phase)
	}
}
