package system

import (
	"space-trader/internal/invariant"
	"space-trader/internal/logger"

	"github.com/sirupsen/logrus"
)

// Mitigate is melee damage after armor, never negative.
func Mitigate(damage, armor int) int {
	return max(0, damage-armor)
}

// RunCombat resolves every pending melee intent in ascending attacker
// order, records the resulting hits in the damage ledger and clears the
// intents. Attackers already at zero health are skipped.
func RunCombat(s *Sim) {
	log := logger.For("combat_system")
	defer s.Intents.Clear()

	for _, attacker := range s.Intents.Attackers() {
		target, _ := s.Intents.Target(attacker)
		as, ok := s.stats(attacker)
		if !ok || !s.World.Alive(attacker) {
			invariant.Raise("RunCombat", "melee intent on an entity without ship stats", map[string]any{
				"attacker": attacker, "target": target,
			})
		}
		if !as.Alive() {
			log.WithField("attacker", attacker).Debug("dead attacker skipped")
			continue
		}
		ts, ok := s.stats(target)
		if !ok || !s.World.Alive(target) {
			invariant.Raise("RunCombat", "melee target no longer exists", map[string]any{
				"attacker": attacker, "target": target,
			})
		}

		dmg := Mitigate(as.MeleeDmg, ts.Armor)
		log.WithFields(logrus.Fields{
			"attacker": attacker,
			"target":   target,
			"raw":      as.MeleeDmg,
			"armor":    ts.Armor,
			"damage":   dmg,
		}).Debug("melee resolved")

		if dmg == 0 {
			s.Logf("%s %s unable to hurt %s.", s.subject(attacker), verb(attacker == s.Player, "are", "is"), s.object(target))
			continue
		}
		s.Ledger.Suffer(target, dmg)
		s.Logf("%s %s %s for %d damage.", s.subject(attacker), verb(attacker == s.Player, "hit", "hits"), s.object(target), dmg)
	}
}

func verb(second bool, you, it string) string {
	if second {
		return you
	}
	return it
}
