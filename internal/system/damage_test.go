package system

import (
	"testing"

	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/gamemap"
)

func TestLedgerSumsHits(t *testing.T) {
	l := NewDamageLedger()
	l.Suffer(3, 2)
	l.Suffer(3, 5)
	l.Suffer(1, 1)

	if l.Total(3) != 7 {
		t.Fatalf("total %d, want 7", l.Total(3))
	}
	if v := l.Victims(); len(v) != 2 || v[0] != 1 || v[1] != 3 {
		t.Fatalf("victims %v, want [1 3]", v)
	}
	l.Clear()
	if l.Len() != 0 || l.Total(3) != 0 {
		t.Fatal("clear should empty the ledger")
	}
}

func TestRunDamageAllowsNegativeHealth(t *testing.T) {
	s := newSim(5, 5)
	addPlayer(s, 1, 1)
	pirate := addPirate(s, 3, 3)
	s.Ledger.Suffer(pirate, 10)

	RunDamage(s)

	if got := healthOf(s, pirate); got != -7 {
		t.Fatalf("health %d, want -7", got)
	}
	if s.Ledger.Len() != 0 {
		t.Fatal("ledger should be empty after RunDamage")
	}
}

func TestPlayerDeathStopsDeleteDead(t *testing.T) {
	s := newSim(5, 5)
	player := addPlayer(s, 1, 1)
	pirate := addPirate(s, 3, 3)
	for _, id := range []ecs.EntityID{player, pirate} {
		st, _ := s.stats(id)
		st.CurrHealth = 0
		s.World.Add(id, st)
	}

	if !DeleteDead(s) {
		t.Fatal("expected player death to be reported")
	}
	if !s.World.Alive(player) {
		t.Fatal("the player entity stays in the world on game over")
	}
	if !s.World.Alive(pirate) {
		t.Fatal("nothing after the player should be removed once the game is over")
	}
}

func TestDeleteDeadKeepsHealthyShips(t *testing.T) {
	s := newSim(5, 5)
	addPlayer(s, 1, 1)
	pirate := addPirate(s, 3, 3)
	st, _ := s.stats(pirate)
	st.CurrHealth = 1
	s.World.Add(pirate, st)

	if DeleteDead(s) {
		t.Fatal("player should not die")
	}
	if !s.World.Alive(pirate) {
		t.Fatal("pirate at 1 health must survive")
	}
}

func TestDestroyedPirateDropsDebris(t *testing.T) {
	s := newSim(5, 5)
	addPlayer(s, 1, 1)
	pirate := addPirate(s, 3, 3)
	st, _ := s.stats(pirate)
	st.CurrHealth = -1
	s.World.Add(pirate, st)
	IndexMap(s)

	var dropped []gamemap.Position
	s.DropLoot = func(at gamemap.Position) ecs.EntityID {
		dropped = append(dropped, at)
		id := s.World.CreateEntity()
		s.World.Add(id, component.At(at))
		s.World.Add(id, component.TagDebris{})
		return id
	}

	DeleteDead(s)

	at := gamemap.Position{X: 3, Y: 3}
	if len(dropped) != 1 || dropped[0] != at {
		t.Fatalf("loot dropped at %v, want [%v]", dropped, at)
	}
	if ids := s.Map.EntitiesAt(at); len(ids) != 1 || !s.World.Has(ids[0], component.CTagDebris) {
		t.Fatalf("occupancy at %v = %v, want the debris", at, ids)
	}
	if s.Map.IsBlocked(at) {
		t.Fatal("debris must not block its cell")
	}
}
