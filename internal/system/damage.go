package system

import (
	"slices"

	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/invariant"
	"space-trader/internal/logger"

	"github.com/sirupsen/logrus"
)

// DamageLedger accumulates this tick's hits per victim. Amounts are kept
// individually so several attackers on one target all land.
type DamageLedger struct {
	hits map[ecs.EntityID][]int
}

// NewDamageLedger returns an empty ledger.
func NewDamageLedger() *DamageLedger {
	return &DamageLedger{hits: make(map[ecs.EntityID][]int)}
}

// Suffer records amount against victim.
func (l *DamageLedger) Suffer(victim ecs.EntityID, amount int) {
	l.hits[victim] = append(l.hits[victim], amount)
}

// Amounts returns the individual hits recorded against victim.
func (l *DamageLedger) Amounts(victim ecs.EntityID) []int {
	return l.hits[victim]
}

// Total sums the hits recorded against victim.
func (l *DamageLedger) Total(victim ecs.EntityID) int {
	sum := 0
	for _, a := range l.hits[victim] {
		sum += a
	}
	return sum
}

// Victims returns every damaged entity in ascending ID order.
func (l *DamageLedger) Victims() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(l.hits))
	for id := range l.hits {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len is the number of damaged entities.
func (l *DamageLedger) Len() int { return len(l.hits) }

// Clear empties the ledger.
func (l *DamageLedger) Clear() {
	clear(l.hits)
}

// RunDamage subtracts every ledger total from its victim's health and
// empties the ledger. Health may go negative here; DeleteDead handles it.
func RunDamage(s *Sim) {
	log := logger.For("damage_system")
	for _, victim := range s.Ledger.Victims() {
		st, ok := s.stats(victim)
		if !ok || !s.World.Alive(victim) {
			invariant.Raise("RunDamage", "damage recorded against an entity without ship stats", map[string]any{
				"victim": victim,
			})
		}
		total := s.Ledger.Total(victim)
		st.CurrHealth -= total
		s.World.Add(victim, st)
		log.WithFields(logrus.Fields{
			"victim": victim,
			"damage": total,
			"health": st.CurrHealth,
		}).Debug("damage applied")
	}
	s.Ledger.Clear()
}

// DeleteDead despawns every ship whose health dropped below 1. If the
// player is among them it returns true immediately and nothing else is
// removed this tick.
func DeleteDead(s *Sim) (playerDied bool) {
	log := logger.For("damage_system")
	for _, id := range s.World.Query(component.CShipStats) {
		st := s.World.Get(id, component.CShipStats).(component.ShipStats)
		if st.Alive() {
			continue
		}
		if id == s.Player {
			s.Logf("Your ship breaks apart. Game over.")
			log.WithField("tick", s.Clock.Tick).Info("player destroyed")
			return true
		}

		name := s.nameOf(id)
		pos, hasPos := s.position(id)
		if hasPos {
			s.Map.RemoveOccupant(id, pos, s.isBlocker)
		}
		isPirate := s.World.Has(id, component.CTagPirate)
		s.World.DestroyEntity(id)
		s.Logf("The %s is destroyed.", name)
		log.WithFields(logrus.Fields{"entity": id, "name": name}).Debug("entity despawned")

		if isPirate && hasPos && s.DropLoot != nil {
			if debris := s.DropLoot(pos); debris != ecs.NilEntity {
				s.Map.AddOccupant(debris, pos, s.World.Has(debris, component.CTagBlockTile))
				s.Logf("The %s leaves a debris field behind.", name)
			}
		}
	}
	return false
}
