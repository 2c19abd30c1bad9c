package component

import "space-trader/internal/ecs"

const CShipStats ecs.ComponentType = 2

// ShipStats holds both the navigation and the combat profile of a ship.
// Speeds are costs in ticks: lower is better. Health is signed because a
// ship may sit below zero between damage resolution and removal.
type ShipStats struct {
	Fuel    int
	Speed   int
	Storage int

	CurrHealth  int
	MaxHealth   int
	HealthRegen int // ticks between regenerating one point of health

	CurrShields int
	MaxShields  int
	ShieldRegen int // ticks between regenerating one point of shields

	Armor int // flat reduction of melee damage

	MeleeSpeed  int
	MeleeDmg    int
	RangedSpeed int
	RangedDmg   int
}

func (ShipStats) Type() ecs.ComponentType { return CShipStats }

// Alive reports whether the ship still has positive health.
func (s ShipStats) Alive() bool { return s.CurrHealth > 0 }
