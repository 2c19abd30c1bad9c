package system

import (
	"strings"
	"testing"

	"space-trader/internal/component"
)

func TestMitigate(t *testing.T) {
	tests := []struct {
		dmg, armor, want int
	}{
		{4, 2, 2},
		{1, 2, 0},
		{2, 2, 0},
		{5, 0, 5},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Mitigate(tt.dmg, tt.armor); got != tt.want {
			t.Errorf("Mitigate(%d, %d) = %d, want %d", tt.dmg, tt.armor, got, tt.want)
		}
	}
}

func TestPlayerKillsPirateInOneTick(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	pirate := addPirate(s, 6, 5)
	st, _ := s.stats(pirate)
	st.CurrHealth = 2
	s.World.Add(pirate, st)
	IndexMap(s)

	s.Intents.WantsToMelee(player, pirate)
	RunCombat(s)
	if got := s.Ledger.Total(pirate); got != 2 {
		t.Fatalf("ledger total %d, want 2", got)
	}
	RunDamage(s)
	if got := healthOf(s, pirate); got != 0 {
		t.Fatalf("pirate health %d, want 0", got)
	}
	if DeleteDead(s) {
		t.Fatal("player should survive")
	}
	if s.World.Alive(pirate) {
		t.Fatal("pirate should be despawned")
	}
	if ids := s.Map.EntitiesAt(posOf(t, s, player).Add(1, 0)); len(ids) != 0 {
		t.Fatalf("occupancy still lists %v", ids)
	}
	found := false
	for _, e := range s.Log.Entries() {
		if strings.Contains(e.Message, "Small Pirate is destroyed") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a destruction message naming the pirate")
	}
}

func TestArmorAbsorbsWeakHit(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	pirate := addPirate(s, 6, 5)
	st := playerStats()
	st.MeleeDmg = 1
	s.World.Add(player, st)

	s.Intents.WantsToMelee(player, pirate)
	RunCombat(s)

	if s.Ledger.Len() != 0 {
		t.Fatal("a fully absorbed hit must not be recorded")
	}
	last := s.Log.Last(1)
	if len(last) != 1 || !strings.Contains(last[0].Message, "unable to hurt") {
		t.Fatalf("expected an 'unable to hurt' message, got %v", last)
	}
	if healthOf(s, pirate) != pirateStats().CurrHealth {
		t.Fatal("pirate health changed")
	}
}

func TestTwoAttackersBothLand(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	a := addPirate(s, 4, 5)
	b := addPirate(s, 6, 5)

	s.Intents.WantsToMelee(a, player)
	s.Intents.WantsToMelee(b, player)
	RunCombat(s)

	if got := s.Ledger.Amounts(player); len(got) != 2 {
		t.Fatalf("ledger has %v, want two hits", got)
	}
	RunDamage(s)
	if got := healthOf(s, player); got != 8 {
		t.Fatalf("player health %d, want 8", got)
	}
}

func TestDeadAttackerIsSkipped(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	pirate := addPirate(s, 6, 5)
	st, _ := s.stats(pirate)
	st.CurrHealth = 0
	s.World.Add(pirate, st)

	s.Intents.WantsToMelee(pirate, player)
	RunCombat(s)

	if s.Ledger.Len() != 0 {
		t.Fatal("a ship at zero health must not deal damage")
	}
	if s.Intents.Len() != 0 {
		t.Fatal("intents should be cleared after combat")
	}
}

func TestMeleeOnDespawnedTargetIsViolation(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	pirate := addPirate(s, 6, 5)
	s.World.DestroyEntity(pirate)

	s.Intents.WantsToMelee(player, pirate)
	expectViolation(t, "RunCombat", func() { RunCombat(s) })
}

func TestCombatClearsIntents(t *testing.T) {
	s := newSim(10, 10)
	player := addPlayer(s, 5, 5)
	pirate := addPirate(s, 6, 5)
	s.Intents.WantsToMelee(player, pirate)
	s.Intents.WantsToMelee(pirate, player)

	RunCombat(s)

	if s.Intents.Len() != 0 {
		t.Fatalf("%d intents left after combat", s.Intents.Len())
	}
	if !s.World.Has(pirate, component.CShipStats) {
		t.Fatal("combat must not despawn anything")
	}
}
