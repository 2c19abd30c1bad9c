package gamemap

import (
	"slices"

	"space-trader/internal/ecs"
)

// Occupant is one entity to place in the occupancy index.
type Occupant struct {
	ID      ecs.EntityID
	Pos     Position
	Blocker bool
}

// RebuildOccupancy recomputes terrain blocking, clears every occupancy list
// and re-populates it from occupants. Blockers also mark their cell blocked.
// Occupants outside the map are ignored.
func (m *Map) RebuildOccupancy(occupants []Occupant) {
	m.RecomputeBlocking()
	for i := range m.Occupancy {
		m.Occupancy[i] = m.Occupancy[i][:0]
	}
	for _, o := range occupants {
		if !m.InBounds(o.Pos.X, o.Pos.Y) {
			continue
		}
		idx := m.CellIndex(o.Pos.X, o.Pos.Y)
		m.Occupancy[idx] = append(m.Occupancy[idx], o.ID)
		if o.Blocker {
			m.Blocked[idx] = true
		}
	}
}

// EntitiesAt returns the entities indexed at p. The slice is owned by the
// map and must not be modified.
func (m *Map) EntitiesAt(p Position) []ecs.EntityID {
	if !m.InBounds(p.X, p.Y) {
		return nil
	}
	return m.Occupancy[m.CellIndex(p.X, p.Y)]
}

// RemoveOccupant drops id from the list at p. A blocker's cell falls back
// to terrain blocking unless another occupant still blocks it; isBlocker
// reports that for the remaining occupants.
func (m *Map) RemoveOccupant(id ecs.EntityID, p Position, isBlocker func(ecs.EntityID) bool) {
	if !m.InBounds(p.X, p.Y) {
		return
	}
	idx := m.CellIndex(p.X, p.Y)
	m.Occupancy[idx] = slices.DeleteFunc(m.Occupancy[idx], func(e ecs.EntityID) bool { return e == id })
	blocked := m.Tiles[idx].Blocks()
	for _, other := range m.Occupancy[idx] {
		if isBlocker != nil && isBlocker(other) {
			blocked = true
			break
		}
	}
	m.Blocked[idx] = blocked
}

// AddOccupant appends id to the list at p and blocks the cell if blocker.
func (m *Map) AddOccupant(id ecs.EntityID, p Position, blocker bool) {
	if !m.InBounds(p.X, p.Y) {
		return
	}
	idx := m.CellIndex(p.X, p.Y)
	m.Occupancy[idx] = append(m.Occupancy[idx], id)
	if blocker {
		m.Blocked[idx] = true
	}
}

// MoveOccupant is RemoveOccupant at from followed by AddOccupant at to.
func (m *Map) MoveOccupant(id ecs.EntityID, from, to Position, blocker bool, isBlocker func(ecs.EntityID) bool) {
	m.RemoveOccupant(id, from, isBlocker)
	m.AddOccupant(id, to, blocker)
}
