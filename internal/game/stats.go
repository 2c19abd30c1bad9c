package game

import (
	"space-trader/internal/component"
	"space-trader/internal/ecs"
)

// RunStats records what happened during one run. It is shown on the game
// over screen and never persisted.
type RunStats struct {
	Depth        int
	Kills        map[string]int // ship name -> count
	DamageDealt  int
	DamageTaken  int
	Salvaged     int
	CauseOfDeath string // name of the last ship to hit the player
}

// TotalKills sums Kills.
func (r RunStats) TotalKills() int {
	n := 0
	for _, c := range r.Kills {
		n += c
	}
	return n
}

// recordAttackers notes who is about to strike the player.
func (s *Session) recordAttackers() {
	for _, a := range s.sim.Intents.Attackers() {
		if t, _ := s.sim.Intents.Target(a); t == s.sim.Player {
			if c := s.sim.World.Get(a, component.CName); c != nil {
				s.stats.CauseOfDeath = c.(component.Name).Short
			}
		}
	}
}

// recordDamage tallies the ledger before it is applied.
func (s *Session) recordDamage() {
	for _, v := range s.sim.Ledger.Victims() {
		if v == s.sim.Player {
			s.stats.DamageTaken += s.sim.Ledger.Total(v)
		} else {
			s.stats.DamageDealt += s.sim.Ledger.Total(v)
		}
	}
}

// doomedPirates lists pirates DeleteDead is about to remove.
func (s *Session) doomedPirates() map[ecs.EntityID]string {
	out := make(map[ecs.EntityID]string)
	w := s.sim.World
	for _, id := range w.Query(component.CTagPirate, component.CShipStats) {
		if w.Get(id, component.CShipStats).(component.ShipStats).Alive() {
			continue
		}
		name := "pirate"
		if c := w.Get(id, component.CName); c != nil {
			name = c.(component.Name).Short
		}
		out[id] = name
	}
	return out
}

func (s *Session) recordKills(doomed map[ecs.EntityID]string) {
	for id, name := range doomed {
		if !s.sim.World.Alive(id) {
			s.stats.Kills[name]++
		}
	}
}
