package factory

import (
	"space-trader/internal/component"
	"space-trader/internal/config"
	"space-trader/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Render order: lower values are drawn over higher ones in a shared cell.
const (
	orderPlayer = 0
	orderShip   = 1
	orderDebris = 2
)

// Stats converts a ship definition into a fully repaired ShipStats.
func Stats(def config.ShipDef) component.ShipStats {
	return component.ShipStats{
		Fuel:        def.Fuel,
		Speed:       def.Speed,
		Storage:     def.Storage,
		CurrHealth:  def.Health,
		MaxHealth:   def.Health,
		HealthRegen: def.HealthRegen,
		CurrShields: def.Shields,
		MaxShields:  def.Shields,
		ShieldRegen: def.ShieldRegen,
		Armor:       def.Armor,
		MeleeSpeed:  def.MeleeSpeed,
		MeleeDmg:    def.MeleeDmg,
		RangedSpeed: def.RangedSpeed,
		RangedDmg:   def.RangedDmg,
	}
}

func color(name string, fallback tcell.Color) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}

// addShip attaches the components every ship shares.
func addShip(w *ecs.World, id ecs.EntityID, def config.ShipDef, x, y, order int, fallback tcell.Color) {
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Short: def.Name, Long: def.LongName})
	w.Add(id, component.Renderable{
		Glyph:       def.Rune(),
		FGColor:     color(def.Color, fallback),
		BGColor:     tcell.ColorDefault,
		RenderOrder: order,
	})
	w.Add(id, Stats(def))
	w.Add(id, component.WaitTimer{})
	if def.HealthRegen > 0 {
		w.Add(id, component.HealthTimer{Turns: def.HealthRegen})
	}
	if def.ShieldRegen > 0 {
		w.Add(id, component.ShieldTimer{Turns: def.ShieldRegen})
	}
	w.Add(id, component.TagShip{})
}

// NewPlayer creates the player ship at (x, y). The player does not block
// its cell, so pirates can always path onto it.
func NewPlayer(w *ecs.World, def config.ShipDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	addShip(w, id, def, x, y, orderPlayer, tcell.ColorYellow)
	w.Add(id, component.Cargo{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewPirate creates a hostile ship at (x, y).
func NewPirate(w *ecs.World, def config.ShipDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	addShip(w, id, def, x, y, orderShip, tcell.ColorRed)
	w.Add(id, component.TagPirate{})
	w.Add(id, component.TagBlockTile{})
	return id
}

// NewDebris creates a salvageable debris field at (x, y).
func NewDebris(w *ecs.World, loot component.Salvage, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Short: "Debris", Long: "Debris field"})
	w.Add(id, component.Renderable{
		Glyph:       '%',
		FGColor:     tcell.ColorGray,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderDebris,
	})
	w.Add(id, loot)
	w.Add(id, component.TagDebris{})
	return id
}
