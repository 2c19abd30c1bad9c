package system

import (
	"testing"

	"space-trader/internal/component"
	"space-trader/internal/gamemap"
)

func TestAdvanceDecrementsPositiveTimers(t *testing.T) {
	s := newSim(5, 5)
	player := addPlayer(s, 1, 1)
	a := addPirate(s, 2, 2)
	b := addPirate(s, 3, 3)
	s.AddWait(a, 3)
	s.AddWait(b, 1)

	n := s.Clock.Advance(s)

	if n != 2 {
		t.Fatalf("decremented %d timers, want 2", n)
	}
	if s.WaitOf(player) != 0 || s.WaitOf(a) != 2 || s.WaitOf(b) != 0 {
		t.Fatalf("waits = %d %d %d", s.WaitOf(player), s.WaitOf(a), s.WaitOf(b))
	}
	if s.Clock.Tick != 1 {
		t.Fatalf("tick %d, want 1", s.Clock.Tick)
	}
}

func TestIncrementTimeReportsPlayerReady(t *testing.T) {
	s := newSim(5, 5)
	player := addPlayer(s, 1, 1)
	s.AddWait(player, 2)

	if IncrementTime(s) {
		t.Fatal("player with wait 1 left should not be ready")
	}
	if !IncrementTime(s) {
		t.Fatal("player should be ready once the timer reaches zero")
	}
	if !IncrementTime(s) {
		t.Fatal("timer must not go below zero")
	}
	if s.WaitOf(player) != 0 {
		t.Fatalf("wait %d, want 0", s.WaitOf(player))
	}
}

func TestIncrementTimeRebuildsOccupancy(t *testing.T) {
	s := newSim(5, 5)
	addPlayer(s, 1, 1)
	pirate := addPirate(s, 3, 3)

	// Move the component without touching the index; the next tick fixes it.
	s.World.Add(pirate, component.Position{X: 4, Y: 4})
	IncrementTime(s)

	if ids := s.Map.EntitiesAt(gamemap.Position{X: 4, Y: 4}); len(ids) != 1 || ids[0] != pirate {
		t.Fatalf("occupancy at (4,4) = %v", ids)
	}
	if !s.Map.IsBlocked(gamemap.Position{X: 4, Y: 4}) || s.Map.IsBlocked(gamemap.Position{X: 3, Y: 3}) {
		t.Fatal("blocking was not rebuilt")
	}
}
