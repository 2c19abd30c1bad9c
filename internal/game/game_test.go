package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestGame(t *testing.T, seed int64) (*Game, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(100, 40)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	g, err := New(ss, Options{Seed: seed, Pilot: "tester"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, ss
}

func TestRunPlaysUntilQuit(t *testing.T) {
	g, ss := newTestGame(t, 11)
	ss.InjectKey(tcell.KeyRune, '.', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Session().Tick() == 0 {
		t.Fatal("the wait key should have advanced the clock")
	}
	if g.Session().LastAction() != WaitTurn {
		t.Fatalf("last action = %v, want WaitTurn", g.Session().LastAction())
	}
}

func TestRestartStartsFreshRun(t *testing.T) {
	g, _ := newTestGame(t, 12)
	first := g.Session()
	g.restart()
	if g.Session() == first {
		t.Fatal("restart should replace the session")
	}
	if g.Session().State() != StateNewGame {
		t.Fatalf("state = %v, want NewGame", g.Session().State())
	}
}

func TestSummaryOrdersKills(t *testing.T) {
	rows := summary(RunStats{
		Depth: 3,
		Kills: map[string]int{"Small Pirate": 2, "Big Pirate": 5, "Alpha": 2},
	}, 120)

	var order []string
	for _, r := range rows {
		if len(r.Label) > 2 && r.Label[:2] == "  " {
			order = append(order, r.Label[2:])
		}
	}
	want := []string{"Big Pirate", "Alpha", "Small Pirate"}
	if len(order) != len(want) {
		t.Fatalf("kill rows = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("kill rows = %v, want %v", order, want)
		}
	}
	if rows[2].Value != "9" {
		t.Fatalf("total kills = %s, want 9", rows[2].Value)
	}
}

func TestTooltipListsEntitiesAtCell(t *testing.T) {
	g, _ := newTestGame(t, 13)
	if _, err := g.Session().Settle(); err != nil {
		t.Fatal(err)
	}
	v := g.Session().View()
	lines := tooltip(v, v.Player.Pos)
	if len(lines) < 2 {
		t.Fatalf("tooltip = %v, want terrain plus the player ship", lines)
	}
	if got := tooltip(v, v.Player.Pos.Add(-1000, 0)); got != nil {
		t.Fatalf("out of bounds tooltip = %v", got)
	}
}
