package system

import (
	"math/rand"

	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/gamelog"
	"space-trader/internal/gamemap"
)

// Sim is the state every phase reads and mutates. It is owned by one game
// session and handed to each phase in turn; phases never run concurrently.
type Sim struct {
	World   *ecs.World
	Map     *gamemap.Map
	Clock   *Clock
	Log     *gamelog.Log
	Intents *Intents
	Ledger  *DamageLedger
	Rand    *rand.Rand
	Player  ecs.EntityID

	// DropLoot is asked once per destroyed pirate. It returns the spawned
	// debris entity, or ecs.NilEntity when nothing drops.
	DropLoot func(at gamemap.Position) ecs.EntityID
}

// NewSim wires an empty simulation around w and m.
func NewSim(w *ecs.World, m *gamemap.Map, rng *rand.Rand) *Sim {
	return &Sim{
		World:   w,
		Map:     m,
		Clock:   &Clock{},
		Log:     &gamelog.Log{},
		Intents: NewIntents(),
		Ledger:  NewDamageLedger(),
		Rand:    rng,
	}
}

// Logf appends a narrative message stamped with the current tick.
func (s *Sim) Logf(format string, args ...any) {
	s.Log.Addf(s.Clock.Tick, format, args...)
}

// position returns the entity's cell and whether it has one.
func (s *Sim) position(id ecs.EntityID) (gamemap.Position, bool) {
	p, ok := ecs.Lookup[component.Position](s.World, id, component.CPosition)
	return p.Cell(), ok
}

// stats returns the entity's ShipStats and whether it has them.
func (s *Sim) stats(id ecs.EntityID) (component.ShipStats, bool) {
	return ecs.Lookup[component.ShipStats](s.World, id, component.CShipStats)
}

// isBlocker reports whether id is a live entity tagged TagBlockTile.
func (s *Sim) isBlocker(id ecs.EntityID) bool {
	return s.World.Alive(id) && s.World.Has(id, component.CTagBlockTile)
}

// nameOf returns the display name used in the narrative log.
func (s *Sim) nameOf(id ecs.EntityID) string {
	if c := s.World.Get(id, component.CName); c != nil {
		return c.(component.Name).Short
	}
	return "entity " + id.String()
}

// subject renders id as the grammatical subject of a log line.
func (s *Sim) subject(id ecs.EntityID) string {
	if id == s.Player {
		return "You"
	}
	return "The " + s.nameOf(id)
}

// object renders id as the grammatical object of a log line.
func (s *Sim) object(id ecs.EntityID) string {
	if id == s.Player {
		return "you"
	}
	return "the " + s.nameOf(id)
}

// AddWait adds turns to the entity's WaitTimer.
func (s *Sim) AddWait(id ecs.EntityID, turns int) {
	c := s.World.Get(id, component.CWaitTimer)
	if c == nil {
		return
	}
	wt := c.(component.WaitTimer)
	wt.Turns += turns
	s.World.Add(id, wt)
}

// WaitOf returns the entity's remaining wait, or 0 if it has no timer.
func (s *Sim) WaitOf(id ecs.EntityID) int {
	if c := s.World.Get(id, component.CWaitTimer); c != nil {
		return c.(component.WaitTimer).Turns
	}
	return 0
}
