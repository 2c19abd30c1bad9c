package system

import (
	"space-trader/internal/component"
	"space-trader/internal/invariant"
	"space-trader/internal/logger"

	"github.com/sirupsen/logrus"
)

// RunAI lets every pirate whose wait timer is zero act once. A pirate
// adjacent to the player queues a melee intent; otherwise it steps along
// the A* path toward the player. Unreachable players are ignored.
func RunAI(s *Sim) {
	log := logger.For("ai_system")
	goal, ok := s.position(s.Player)
	if !ok {
		return
	}

	for _, id := range s.World.Query(component.CTagPirate, component.CPosition, component.CWaitTimer, component.CShipStats) {
		if s.WaitOf(id) != 0 {
			continue
		}
		st, _ := s.stats(id)
		pos, _ := s.position(id)

		path, found := FindPath(pos, goal, s.Map)
		if !found {
			log.WithFields(logrus.Fields{"entity": id, "from": pos, "goal": goal}).Debug("no path to player")
			continue
		}

		switch {
		case path.Len() > 2:
			next := path.Steps[1]
			MoveEntity(s, id, next)
			s.AddWait(id, st.Speed)
			log.WithFields(logrus.Fields{"entity": id, "from": pos, "to": next}).Debug("pirate moved")
		case path.Len() == 2:
			s.Intents.WantsToMelee(id, s.Player)
			s.AddWait(id, st.MeleeSpeed)
			log.WithFields(logrus.Fields{"entity": id, "target": s.Player}).Debug("pirate attacks")
		default:
			invariant.Raise("RunAI", "path shorter than two cells", map[string]any{
				"entity": id, "pos": pos, "goal": goal, "len": path.Len(),
			})
		}
	}
}
