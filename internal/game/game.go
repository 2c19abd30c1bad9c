package game

import (
	"fmt"
	"sort"
	"strconv"

	"space-trader/internal/gamemap"
	"space-trader/internal/logger"
	"space-trader/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Game is the terminal front-end: it owns a screen, renders the current
// Session and feeds key presses into it.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	session  *Session
	runs     int

	hover    gamemap.Position
	hovering bool

	log *logrus.Entry
}

// NewTerminal creates a Game on the local terminal.
func NewTerminal(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	g, err := New(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// New creates a Game on an already initialised screen. Run finalises the
// screen when it returns.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	sess, err := NewSession(opts)
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		opts:     opts,
		session:  sess,
		log:      logger.For("game").WithField("pilot", opts.Pilot),
	}, nil
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Run drives the game until the player quits. It returns an error only when
// a turn phase aborted on a broken invariant.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		st, err := g.session.Settle()
		if err != nil {
			g.log.WithError(err).WithFields(logrus.Fields{
				"state": st,
				"tick":  g.session.Tick(),
			}).Error("turn aborted")
			return err
		}
		g.draw()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventMouse:
			x, y := ev.Position()
			g.hover, g.hovering = g.renderer.ScreenToWorld(x, y)
		case *tcell.EventKey:
			if st == StateGameOver {
				if !g.endScreenKey(ev) {
					return nil
				}
				continue
			}
			in, ok := keyToIntent(ev, st == StateInventoryMenu)
			if !ok {
				continue
			}
			if in.Kind == IntentQuit {
				g.log.WithField("tick", g.session.Tick()).Info("player quit")
				return nil
			}
			g.session.Submit(in)
		}
	}
}

// endScreenKey handles a key on the game over screen and reports whether
// the game keeps running.
func (g *Game) endScreenKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		return false
	}
	switch ev.Rune() {
	case 'r', 'R':
		g.restart()
	case 'q', 'Q':
		return false
	}
	return true
}

// restart begins a fresh run with the next seed.
func (g *Game) restart() {
	g.runs++
	opts := g.opts
	opts.Seed += int64(g.runs)
	sess, err := NewSession(opts)
	if err != nil {
		g.log.WithError(err).Error("restart failed")
		return
	}
	g.session = sess
	g.log.WithField("seed", opts.Seed).Info("new run")
}

func (g *Game) draw() {
	v := g.session.View()
	r := g.renderer
	r.Clear()

	sprites := make([]render.Sprite, 0, len(v.Entities))
	hostiles := 0
	for _, e := range v.Entities {
		sprites = append(sprites, render.Sprite{
			Pos:   e.Pos,
			Glyph: e.Glyph,
			FG:    e.FG,
			Order: e.Order,
		})
		if !e.Player && e.Stats != nil {
			hostiles++
		}
	}
	r.DrawMap(v.Map, sprites, v.Player.Pos)

	st := statusOf(v, hostiles)
	r.DrawStatusLine(fmt.Sprintf("%s  sector %d  tick %d   move hjklyubn  wait .  use g  cargo i  quit q",
		st.Name, v.Depth, v.Tick))
	r.DrawSidebar(st)
	r.DrawLog(v.Log)

	if g.hovering {
		if sx, sy, ok := r.Camera().WorldToScreen(g.hover); ok {
			r.DrawTooltip(sx, sy, tooltip(v, g.hover))
		}
	}

	switch v.State {
	case StateInventoryMenu:
		r.DrawInventory(st)
	case StateGameOver:
		r.DrawGameOver("YOUR SHIP IS LOST", summary(v.Stats, v.Tick))
	}
	r.Show()
}

func statusOf(v View, hostiles int) render.Status {
	st := render.Status{
		Name:     v.Player.Name.Display(),
		Depth:    v.Depth,
		Tick:     v.Tick,
		Pos:      v.Player.Pos,
		Cargo:    v.Cargo,
		Hostiles: hostiles,
	}
	if v.Player.Stats != nil {
		st.Stats = *v.Player.Stats
	}
	if v.Map != nil && v.Map.InBounds(v.Player.Pos.X, v.Player.Pos.Y) {
		st.Terrain = v.Map.At(v.Player.Pos).String()
	}
	return st
}

// tooltip describes the terrain and entities at p.
func tooltip(v View, p gamemap.Position) []string {
	if v.Map == nil || !v.Map.InBounds(p.X, p.Y) {
		return nil
	}
	lines := []string{v.Map.At(p).String()}
	for _, e := range v.Entities {
		if e.Pos != p {
			continue
		}
		line := e.Name.Short
		if e.Stats != nil {
			line += fmt.Sprintf(" hull %d/%d", max(e.Stats.CurrHealth, 0), e.Stats.MaxHealth)
		}
		lines = append(lines, line)
	}
	return lines
}

// summary lays out the end-of-run statistics, kills sorted by count.
func summary(st RunStats, tick uint64) []render.KV {
	rows := []render.KV{
		{Label: "Sector reached", Value: strconv.Itoa(st.Depth)},
		{Label: "Ticks survived", Value: strconv.FormatUint(tick, 10)},
		{Label: "Pirates killed", Value: strconv.Itoa(st.TotalKills())},
	}

	names := make([]string, 0, len(st.Kills))
	for name := range st.Kills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if st.Kills[names[i]] != st.Kills[names[j]] {
			return st.Kills[names[i]] > st.Kills[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		rows = append(rows, render.KV{Label: "  " + name, Value: strconv.Itoa(st.Kills[name])})
	}

	rows = append(rows,
		render.KV{Label: "Damage dealt", Value: strconv.Itoa(st.DamageDealt)},
		render.KV{Label: "Damage taken", Value: strconv.Itoa(st.DamageTaken)},
		render.KV{Label: "Debris salvaged", Value: strconv.Itoa(st.Salvaged)},
	)
	if st.CauseOfDeath != "" {
		rows = append(rows, render.KV{Label: "Destroyed by", Value: st.CauseOfDeath})
	}
	return rows
}
