package factory

import (
	"testing"

	"space-trader/internal/component"
	"space-trader/internal/config"
	"space-trader/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestNewPlayerComponents(t *testing.T) {
	cfg := testConfig(t)
	w := ecs.NewWorld()
	id := NewPlayer(w, cfg.Player, 5, 3)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	if p := w.Get(id, component.CPosition).(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	st := w.Get(id, component.CShipStats).(component.ShipStats)
	if st.CurrHealth != 10 || st.MaxHealth != 10 || st.MeleeDmg != 4 || st.Speed != 2 {
		t.Errorf("unexpected stats %+v", st)
	}
	for _, ct := range []ecs.ComponentType{
		component.CTagPlayer, component.CTagShip, component.CWaitTimer,
		component.CHealthTimer, component.CShieldTimer, component.CCargo, component.CName,
	} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component %d", ct)
		}
	}
	if w.Has(id, component.CTagBlockTile) {
		t.Error("player must not block its cell")
	}
	r := w.Get(id, component.CRenderable).(component.Renderable)
	if r.Glyph != '@' || r.FGColor != tcell.ColorYellow {
		t.Errorf("renderable = %+v", r)
	}
}

func TestNewPirateComponents(t *testing.T) {
	cfg := testConfig(t)
	w := ecs.NewWorld()
	id := NewPirate(w, cfg.Pirates[1].ShipDef, 1, 2)

	if !w.Has(id, component.CTagPirate) || !w.Has(id, component.CTagBlockTile) {
		t.Fatal("pirate must be tagged pirate and blocking")
	}
	if w.Has(id, component.CHealthTimer) {
		t.Error("pirates without regen get no health timer")
	}
	if n := w.Get(id, component.CName).(component.Name); n.Short != "Big Pirate" {
		t.Errorf("name = %q", n.Short)
	}
	if r := w.Get(id, component.CRenderable).(component.Renderable); r.Glyph != 'P' {
		t.Errorf("glyph = %q", r.Glyph)
	}
	if st := w.Get(id, component.CShipStats).(component.ShipStats); st.Armor != 2 {
		t.Errorf("armor = %d", st.Armor)
	}
}

func TestNewDebris(t *testing.T) {
	w := ecs.NewWorld()
	id := NewDebris(w, component.Salvage{Fuel: 3, Cargo: 9}, 4, 4)

	if !w.Has(id, component.CTagDebris) {
		t.Fatal("debris tag missing")
	}
	if w.Has(id, component.CTagBlockTile) || w.Has(id, component.CShipStats) {
		t.Fatal("debris must be neither a blocker nor a ship")
	}
	if s := w.Get(id, component.CSalvage).(component.Salvage); s.Cargo != 9 {
		t.Errorf("salvage = %+v", s)
	}
}

func TestUnknownColorFallsBack(t *testing.T) {
	def := testConfig(t).Player
	def.Color = "not-a-colour"
	w := ecs.NewWorld()
	id := NewPlayer(w, def, 0, 0)
	if r := w.Get(id, component.CRenderable).(component.Renderable); r.FGColor != tcell.ColorYellow {
		t.Errorf("fallback color = %v", r.FGColor)
	}
}
