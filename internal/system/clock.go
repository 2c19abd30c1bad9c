package system

import (
	"space-trader/internal/component"
	"space-trader/internal/logger"

	"github.com/sirupsen/logrus"
)

// Clock is the session's logical time. Tick only ever grows.
type Clock struct {
	Tick uint64
}

// Advance increments the tick and decrements every positive WaitTimer by
// one. It returns how many timers were decremented.
func (c *Clock) Advance(s *Sim) int {
	c.Tick++
	n := 0
	for _, id := range s.World.Query(component.CWaitTimer) {
		wt := s.World.Get(id, component.CWaitTimer).(component.WaitTimer)
		if wt.Turns > 0 {
			wt.Turns--
			s.World.Add(id, wt)
			n++
		}
	}
	return n
}

// IncrementTime runs the IncrementTime phase: advance the clock, then
// rebuild the occupancy index so input handling and AI see this tick's
// snapshot. It reports whether the player may act this tick.
func IncrementTime(s *Sim) bool {
	n := s.Clock.Advance(s)
	IndexMap(s)
	ready := s.World.Alive(s.Player) && s.WaitOf(s.Player) == 0
	logger.For("time_system").WithFields(logrus.Fields{
		"tick":         s.Clock.Tick,
		"decremented":  n,
		"player_ready": ready,
	}).Debug("tick advanced")
	return ready
}
