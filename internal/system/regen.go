package system

import (
	"space-trader/internal/component"
	"space-trader/internal/invariant"
	"space-trader/internal/logger"
)

// RunTimers ticks health and shield regeneration. A timer above zero
// counts down. At zero a damaged stat regains one point and the timer
// resets to the ship's regen interval; an undamaged ship keeps its timer
// at zero so it starts repairing on the first tick after a hit.
func RunTimers(s *Sim) {
	log := logger.For("regen_system")

	for _, id := range s.World.Query(component.CHealthTimer) {
		st, ok := s.stats(id)
		if !ok {
			invariant.Raise("RunTimers", "health timer on an entity without ship stats", map[string]any{"entity": id})
		}
		ht := s.World.Get(id, component.CHealthTimer).(component.HealthTimer)
		if ht.Turns > 0 {
			ht.Turns--
			s.World.Add(id, ht)
			continue
		}
		if st.CurrHealth < st.MaxHealth {
			st.CurrHealth++
			s.World.Add(id, st)
			if id == s.Player {
				s.Logf("You repair some hull damage.")
			}
			log.WithField("entity", id).Debug("health regenerated")
			ht.Turns = st.HealthRegen
			s.World.Add(id, ht)
		}
	}

	for _, id := range s.World.Query(component.CShieldTimer) {
		st, ok := s.stats(id)
		if !ok {
			invariant.Raise("RunTimers", "shield timer on an entity without ship stats", map[string]any{"entity": id})
		}
		sh := s.World.Get(id, component.CShieldTimer).(component.ShieldTimer)
		if sh.Turns > 0 {
			sh.Turns--
			s.World.Add(id, sh)
			continue
		}
		if st.CurrShields < st.MaxShields {
			st.CurrShields++
			s.World.Add(id, st)
			log.WithField("entity", id).Debug("shields regenerated")
			sh.Turns = st.ShieldRegen
			s.World.Add(id, sh)
		}
	}
}
