package system

import (
	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/gamemap"
	"space-trader/internal/invariant"
)

// MoveResult is the outcome of a bump-to-move attempt.
type MoveResult uint8

const (
	MoveBlocked MoveResult = iota
	MoveOK
	MoveAttack
)

// MoveEntity relocates id to `to` and updates occupancy and blocking.
func MoveEntity(s *Sim, id ecs.EntityID, to gamemap.Position) {
	from, ok := s.position(id)
	if !ok {
		return
	}
	s.World.Add(id, component.At(to))
	s.Map.MoveOccupant(id, from, to, s.World.Has(id, component.CTagBlockTile), s.isBlocker)
}

// TryMove attempts to move id by (dx, dy). A ship in the destination is
// attacked instead; the attacked entity is returned with MoveAttack.
// Out-of-bounds and blocked destinations leave everything unchanged.
func TryMove(s *Sim, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	from, ok := s.position(id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	to := from.Add(dx, dy)
	if !s.Map.InBounds(to.X, to.Y) {
		return MoveBlocked, ecs.NilEntity
	}

	for _, other := range s.Map.EntitiesAt(to) {
		if other == id {
			continue
		}
		if !s.World.Alive(other) {
			invariant.Raise("Movement", "occupancy lists a despawned entity", map[string]any{
				"entity": other, "cell": to,
			})
		}
		if s.World.Has(other, component.CShipStats) {
			return MoveAttack, other
		}
	}

	if s.Map.IsBlocked(to) {
		return MoveBlocked, ecs.NilEntity
	}
	MoveEntity(s, id, to)
	return MoveOK, ecs.NilEntity
}

// DebrisAt returns the first debris entity in p, or ecs.NilEntity.
func DebrisAt(s *Sim, p gamemap.Position) ecs.EntityID {
	for _, id := range s.Map.EntitiesAt(p) {
		if s.World.Has(id, component.CTagDebris) {
			return id
		}
	}
	return ecs.NilEntity
}

// Salvage moves the contents of the debris under id into its hold and
// despawns the debris. It reports false when there is nothing to salvage.
func Salvage(s *Sim, id ecs.EntityID) bool {
	pos, ok := s.position(id)
	if !ok {
		return false
	}
	debris := DebrisAt(s, pos)
	if debris == ecs.NilEntity {
		return false
	}

	var loot component.Salvage
	if c := s.World.Get(debris, component.CSalvage); c != nil {
		loot = c.(component.Salvage)
	}
	st, _ := s.stats(id)
	st.Fuel += loot.Fuel
	s.World.Add(id, st)

	cargo := component.Cargo{}
	if c := s.World.Get(id, component.CCargo); c != nil {
		cargo = c.(component.Cargo)
	}
	room := max(0, st.Storage-cargo.Used)
	taken := min(room, loot.Cargo)
	cargo.Used += taken
	cargo.Salvaged++
	s.World.Add(id, cargo)

	s.Map.RemoveOccupant(debris, pos, s.isBlocker)
	s.World.DestroyEntity(debris)
	s.Logf("You salvage %d fuel and %d units of cargo.", loot.Fuel, taken)
	return true
}
