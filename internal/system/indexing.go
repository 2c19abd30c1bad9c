package system

import (
	"space-trader/internal/component"
	"space-trader/internal/gamemap"
)

// IndexMap rebuilds blocking and occupancy from terrain and every live
// entity with a Position, visiting entities in ascending ID order.
func IndexMap(s *Sim) {
	ids := s.World.Query(component.CPosition)
	occ := make([]gamemap.Occupant, 0, len(ids))
	for _, id := range ids {
		pos := s.World.Get(id, component.CPosition).(component.Position)
		occ = append(occ, gamemap.Occupant{
			ID:      id,
			Pos:     pos.Cell(),
			Blocker: s.World.Has(id, component.CTagBlockTile),
		})
	}
	s.Map.RebuildOccupancy(occ)
}
