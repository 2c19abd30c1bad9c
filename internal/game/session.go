package game

import (
	"fmt"
	"math/rand"

	"space-trader/internal/component"
	"space-trader/internal/config"
	"space-trader/internal/ecs"
	"space-trader/internal/factory"
	"space-trader/internal/gamelog"
	"space-trader/internal/gamemap"
	"space-trader/internal/generate"
	"space-trader/internal/invariant"
	"space-trader/internal/logger"
	"space-trader/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configure a new Session.
type Options struct {
	Config  *config.Config
	Builder generate.Builder // nil selects Config.Map.Builder
	Seed    int64
	Pilot   string // optional; shown as the player ship's long name
}

// Session is one single-player game: the simulation plus the turn state
// machine driving it. It is not safe for concurrent use.
type Session struct {
	cfg     *config.Config
	builder generate.Builder
	rng     *rand.Rand
	pilot   string

	sim     *system.Sim
	state   State
	pending []Intent
	table   *generate.RandomTable
	pirates map[string]config.ShipDef

	lastAction PlayerAction
	stats      RunStats
	log        *logrus.Entry
}

// NewSession creates a session in StateNewGame. The first Step builds the
// opening sector.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}
	b := opts.Builder
	if b == nil {
		var err error
		if b, err = generate.ByName(cfg.Map.Builder); err != nil {
			return nil, fmt.Errorf("new session: %w", err)
		}
	}

	s := &Session{
		cfg:     cfg,
		builder: b,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		pilot:   opts.Pilot,
		state:   StateNewGame,
		table:   &generate.RandomTable{},
		pirates: make(map[string]config.ShipDef, len(cfg.Pirates)),
		log:     logger.For("session").WithField("seed", opts.Seed),
	}
	for _, p := range cfg.Pirates {
		s.table.Add(p.Name, p.Weight)
		s.pirates[p.Name] = p.ShipDef
	}
	s.stats.Kills = make(map[string]int)

	s.sim = system.NewSim(ecs.NewWorld(), gamemap.New(cfg.Map.Width, cfg.Map.Height), s.rng)
	s.sim.DropLoot = s.dropLoot
	return s, nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Tick returns the current logical time.
func (s *Session) Tick() uint64 { return s.sim.Clock.Tick }

// LastAction is the outcome of the most recently consumed intent.
func (s *Session) LastAction() PlayerAction { return s.lastAction }

// Log is the narrative log.
func (s *Session) Log() *gamelog.Log { return s.sim.Log }

// Stats returns the run statistics collected so far.
func (s *Session) Stats() RunStats { return s.stats }

// Submit queues an intent for the next AwaitingInput or InventoryMenu
// activation.
func (s *Session) Submit(in Intent) {
	s.pending = append(s.pending, in)
}

// Pending is the number of queued intents.
func (s *Session) Pending() int { return len(s.pending) }

// SafeStep is Step with invariant violations returned as errors. The
// session is left in the state it was in when the violation was raised.
func (s *Session) SafeStep() (st State, err error) {
	defer invariant.Recover(&err)
	return s.Step(), nil
}

// Settle steps until the machine needs input or the game is over.
func (s *Session) Settle() (State, error) {
	for {
		st, err := s.SafeStep()
		if err != nil {
			return st, err
		}
		if st == StateGameOver || (st.waitsForInput() && len(s.pending) == 0) {
			return st, nil
		}
	}
}

func (s *Session) nextIntent() (Intent, bool) {
	if len(s.pending) == 0 {
		return Intent{}, false
	}
	in := s.pending[0]
	s.pending = s.pending[1:]
	return in, true
}

// dropLoot spawns a debris field with probability Config.LootChance.
func (s *Session) dropLoot(at gamemap.Position) ecs.EntityID {
	if s.rng.Float64() >= s.cfg.LootChance {
		return ecs.NilEntity
	}
	sc := s.cfg.Salvage
	loot := component.Salvage{
		Fuel:  sc.MinFuel + s.rng.Intn(sc.MaxFuel-sc.MinFuel+1),
		Cargo: sc.MinCargo + s.rng.Intn(sc.MaxCargo-sc.MinCargo+1),
	}
	return factory.NewDebris(s.sim.World, loot, at.X, at.Y)
}

// EntityView is the render-facing snapshot of one entity.
type EntityView struct {
	ID     ecs.EntityID
	Pos    gamemap.Position
	Glyph  rune
	FG     tcell.Color
	Order  int
	Name   component.Name
	Stats  *component.ShipStats
	Player bool
	Debris bool
}

// View is a read-only snapshot for front-ends.
type View struct {
	Map      *gamemap.Map
	Tick     uint64
	Depth    int
	State    State
	Entities []EntityView // ascending ID
	Player   EntityView
	Cargo    component.Cargo
	Log      []gamelog.Entry
	Stats    RunStats
}

// View snapshots the session. Entity stats are copies; Map and Log are
// shared and must not be modified.
func (s *Session) View() View {
	w := s.sim.World
	v := View{
		Map:   s.sim.Map,
		Tick:  s.sim.Clock.Tick,
		Depth: s.sim.Map.Depth,
		State: s.state,
		Log:   s.sim.Log.Entries(),
		Stats: s.stats,
	}
	for _, id := range w.Query(component.CPosition, component.CRenderable) {
		pos := w.Get(id, component.CPosition).(component.Position)
		r := w.Get(id, component.CRenderable).(component.Renderable)
		ev := EntityView{
			ID:     id,
			Pos:    pos.Cell(),
			Glyph:  r.Glyph,
			FG:     r.FGColor,
			Order:  r.RenderOrder,
			Player: id == s.sim.Player,
			Debris: w.Has(id, component.CTagDebris),
		}
		if c := w.Get(id, component.CName); c != nil {
			ev.Name = c.(component.Name)
		}
		if c := w.Get(id, component.CShipStats); c != nil {
			st := c.(component.ShipStats)
			ev.Stats = &st
		}
		if ev.Player {
			v.Player = ev
		}
		v.Entities = append(v.Entities, ev)
	}
	if c := w.Get(s.sim.Player, component.CCargo); c != nil {
		v.Cargo = c.(component.Cargo)
	}
	return v
}
