package game

import (
	"space-trader/internal/component"
	"space-trader/internal/ecs"
	"space-trader/internal/factory"
	"space-trader/internal/generate"
	"space-trader/internal/invariant"
	"space-trader/internal/system"

	"github.com/sirupsen/logrus"
)

// Step runs exactly one phase for the current state and stores and returns
// the next state. States waiting for input return themselves when no
// intent is queued. GameOver is absorbing.
func (s *Session) Step() State {
	prev := s.state
	var next State

	switch s.state {
	case StateNewGame:
		s.newGame()
		next = StateAwaitingInput
	case StateNextLevel:
		s.nextLevel()
		next = StateAwaitingInput
	case StateIncrementTime:
		if system.IncrementTime(s.sim) {
			next = StateAwaitingInput
		} else {
			next = StateRunAI
		}
	case StateAwaitingInput:
		next = s.awaitingInput()
	case StateInventoryMenu:
		next = s.inventoryMenu()
	case StateRunAI:
		system.RunAI(s.sim)
		next = StateRunCombat
	case StateRunCombat:
		s.recordAttackers()
		system.RunCombat(s.sim)
		next = StateRunDamage
	case StateRunDamage:
		s.recordDamage()
		system.RunDamage(s.sim)
		next = StateDeleteDead
	case StateDeleteDead:
		doomed := s.doomedPirates()
		if system.DeleteDead(s.sim) {
			next = StateGameOver
			break
		}
		s.recordKills(doomed)
		next = StateRunTimers
	case StateRunTimers:
		system.RunTimers(s.sim)
		next = StateIncrementTime
	case StateGameOver:
		return StateGameOver
	default:
		invariant.Raise("TurnStateMachine", "unknown state", map[string]any{"state": s.state})
	}

	s.state = next
	if prev != next {
		s.log.WithFields(logrus.Fields{
			"tick": s.sim.Clock.Tick,
			"from": prev,
			"to":   next,
		}).Trace("state transition")
	}
	return next
}

// awaitingInput consumes at most one intent.
func (s *Session) awaitingInput() State {
	if s.sim.WaitOf(s.sim.Player) > 0 {
		return StateRunAI
	}
	in, ok := s.nextIntent()
	if !ok {
		return StateAwaitingInput
	}

	action := s.playerAction(in)
	s.lastAction = action
	s.log.WithFields(logrus.Fields{
		"tick":   s.sim.Clock.Tick,
		"intent": in.Kind,
		"action": action,
	}).Debug("player acted")

	switch action {
	case NoAction:
		return StateAwaitingInput
	case Transit:
		return StateNextLevel
	case OpenInventory:
		return StateInventoryMenu
	}
	return StateRunAI
}

// playerAction applies one intent for the player and charges its wait cost.
func (s *Session) playerAction(in Intent) PlayerAction {
	sim := s.sim
	player := sim.Player
	st := sim.World.Get(player, component.CShipStats).(component.ShipStats)

	switch in.Kind {
	case IntentMove:
		if !in.unitStep() {
			return NoAction
		}
		switch result, target := system.TryMove(sim, player, in.DX, in.DY); result {
		case system.MoveOK:
			sim.AddWait(player, st.Speed)
			return Moved
		case system.MoveAttack:
			sim.Intents.WantsToMelee(player, target)
			sim.AddWait(player, st.MeleeSpeed)
			return MeleeAttack
		}
		return NoAction

	case IntentWait:
		sim.AddWait(player, 1)
		return WaitTurn

	case IntentInteract:
		pos := sim.World.Get(player, component.CPosition).(component.Position).Cell()
		if sim.Map.At(pos).Transit() {
			return Transit
		}
		if system.Salvage(sim, player) {
			s.stats.Salvaged++
			sim.AddWait(player, 1)
			return Salvaged
		}
		sim.Logf("There is nothing here to use.")
		return NoAction

	case IntentOpenMenu:
		return OpenInventory
	}
	return NoAction
}

// inventoryMenu consumes intents until one closes the overlay.
func (s *Session) inventoryMenu() State {
	in, ok := s.nextIntent()
	if !ok {
		return StateInventoryMenu
	}
	if in.Kind == IntentCloseMenu || in.Kind == IntentOpenMenu {
		return StateAwaitingInput
	}
	return StateInventoryMenu
}

func (s *Session) newGame() {
	s.sim.Clock.Tick = 0
	s.stats = RunStats{Kills: make(map[string]int)}
	s.loadLevel(1, nil)
	s.sim.Logf("You take command of the %s. Find the warp gate to jump onward.", s.cfg.Player.Name)
}

func (s *Session) nextLevel() {
	depth := s.sim.Map.Depth + 1
	keep := s.sim.World.Get(s.sim.Player, component.CShipStats).(component.ShipStats)
	cargo, _ := s.sim.World.Get(s.sim.Player, component.CCargo).(component.Cargo)
	s.loadLevel(depth, &carried{stats: keep, cargo: cargo})
	s.sim.Logf("You jump through the warp gate into sector %d.", depth)
}

// carried is the player state kept across a jump.
type carried struct {
	stats component.ShipStats
	cargo component.Cargo
}

// loadLevel builds a sector, places the player and spawns pirates.
func (s *Session) loadLevel(depth int, keep *carried) {
	lvl := s.builder.Build(generate.Params{
		Width:  s.cfg.Map.Width,
		Height: s.cfg.Map.Height,
		Depth:  depth,
		Rand:   s.rng,
	})
	lvl.Map.Depth = depth

	w := ecs.NewWorld()
	def := s.cfg.Player
	if s.pilot != "" {
		def.LongName = s.pilot + "'s " + def.Name
	}
	player := factory.NewPlayer(w, def, lvl.Start.X, lvl.Start.Y)
	if keep != nil {
		w.Add(player, keep.stats)
		w.Add(player, keep.cargo)
	}

	spawns := generate.Populate(lvl, s.rng, s.table, s.cfg.MaxPirates)
	for _, sp := range spawns {
		pdef, ok := s.pirates[sp.Name]
		if !ok {
			invariant.Raise("NewGame", "spawn table names an unknown ship", map[string]any{"name": sp.Name})
		}
		factory.NewPirate(w, pdef, sp.Pos.X, sp.Pos.Y)
	}

	s.sim.World = w
	s.sim.Map = lvl.Map
	s.sim.Player = player
	s.sim.Intents.Clear()
	s.sim.Ledger.Clear()
	system.IndexMap(s.sim)

	if depth > s.stats.Depth {
		s.stats.Depth = depth
	}
	s.log.WithFields(logrus.Fields{
		"depth":   depth,
		"builder": s.builder.Name(),
		"pirates": len(spawns),
		"start":   lvl.Start,
		"gate":    lvl.Gate,
	}).Info("sector built")
}
