package render

import (
	"strings"
	"testing"

	"space-trader/internal/component"
	"space-trader/internal/gamelog"
	"space-trader/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

// row reads back one screen row as a string.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r := cell(s, x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(row(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestCameraCentersAndClamps(t *testing.T) {
	c := NewCamera(0, 1, 20, 10)
	c.Center(50, 50, 100, 100)
	if c.OffsetX != 40 || c.OffsetY != 45 {
		t.Fatalf("offset = (%d,%d), want (40,45)", c.OffsetX, c.OffsetY)
	}
	c.Center(2, 2, 100, 100)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Fatalf("offset should clamp to 0, got (%d,%d)", c.OffsetX, c.OffsetY)
	}
	c.Center(99, 99, 100, 100)
	if c.OffsetX != 80 || c.OffsetY != 90 {
		t.Fatalf("offset should clamp to the far edge, got (%d,%d)", c.OffsetX, c.OffsetY)
	}
	c.Center(5, 5, 8, 8)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Fatal("a map smaller than the view is pinned to the origin")
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(0, 1, 20, 10)
	c.Center(30, 30, 100, 100)
	p := gamemap.Position{X: 31, Y: 28}
	sx, sy, ok := c.WorldToScreen(p)
	if !ok {
		t.Fatal("expected the cell to be visible")
	}
	back, ok := c.ScreenToWorld(sx, sy)
	if !ok || back != p {
		t.Fatalf("round trip gave %v %v", back, ok)
	}
	if _, ok := c.ScreenToWorld(0, 0); ok {
		t.Fatal("row 0 belongs to the status line, not the viewport")
	}
}

func TestDrawMapPutsSpritesOverTerrain(t *testing.T) {
	ss := newTestScreen(t, 80, 30)
	r := NewRenderer(ss)

	m := gamemap.New(10, 10)
	m.Fill(gamemap.TileSpace)
	m.Set(2, 2, gamemap.TileStar)
	sprites := []Sprite{
		{Pos: gamemap.Position{X: 4, Y: 4}, Glyph: '%', Order: 2},
		{Pos: gamemap.Position{X: 4, Y: 4}, Glyph: '@', Order: 0},
	}
	r.DrawMap(m, sprites, gamemap.Position{X: 4, Y: 4})

	if got := cell(ss, 4, 1+4); got != '@' {
		t.Fatalf("cell (4,4) shows %q, want '@'", got)
	}
	if got := cell(ss, 2, 1+2); got != '*' {
		t.Fatalf("cell (2,2) shows %q, want the star", got)
	}
	if got := cell(ss, 0, 1); got != '.' {
		t.Fatalf("cell (0,0) shows %q, want space", got)
	}
}

func TestDrawLogShowsNewestEntries(t *testing.T) {
	ss := newTestScreen(t, 80, 30)
	r := NewRenderer(ss)

	var log gamelog.Log
	for i := 0; i < 8; i++ {
		log.Addf(uint64(i), "message %d", i)
	}
	r.DrawLog(log.Entries())

	last := row(ss, 29)
	if !strings.Contains(last, "message 7") {
		t.Fatalf("bottom row = %q, want the newest message", last)
	}
	top := row(ss, 30-LogHeight+1)
	if !strings.Contains(top, "message 3") {
		t.Fatalf("first log row = %q, want message 3", top)
	}
}

func TestDrawSidebarShowsStats(t *testing.T) {
	ss := newTestScreen(t, 80, 30)
	r := NewRenderer(ss)
	r.DrawSidebar(Status{
		Name:  "Enterprise",
		Depth: 2,
		Stats: component.ShipStats{CurrHealth: 3, MaxHealth: 10, Storage: 1000, Fuel: 42},
		Cargo: component.Cargo{Used: 12},
	})

	out := screenText(ss)
	for _, want := range []string{"Enterprise", "3/10", "12/1000", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		cur, max, width int
		want            string
	}{
		{10, 10, 5, "[#####]"},
		{0, 10, 5, "[     ]"},
		{5, 10, 4, "[##  ]"},
		{-3, 10, 3, "[   ]"},
		{1, 0, 2, "[  ]"},
	}
	for _, tt := range tests {
		if got := bar(tt.cur, tt.max, tt.width); got != tt.want {
			t.Errorf("bar(%d,%d,%d) = %q, want %q", tt.cur, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestDrawTextTruncates(t *testing.T) {
	ss := newTestScreen(t, 20, 5)
	r := NewRenderer(ss)
	n := r.drawText(0, 0, 6, "Small Pirate", styleText)
	if n > 6 {
		t.Fatalf("drew %d columns, limit 6", n)
	}
	if got := row(ss, 0); !strings.HasPrefix(got, "Small") || strings.HasPrefix(got, "Small P") {
		t.Fatalf("row = %q, want a truncated name", got)
	}
}

func TestDrawTooltipFlipsAtRightEdge(t *testing.T) {
	ss := newTestScreen(t, 40, 10)
	r := NewRenderer(ss)
	r.DrawTooltip(38, 2, []string{"Small Pirate"})

	got := row(ss, 2)
	idx := strings.Index(got, "Small Pirate")
	if idx < 0 {
		t.Fatalf("tooltip not drawn: %q", got)
	}
	if idx >= 38 {
		t.Fatalf("tooltip should open to the left of the cursor, starts at %d", idx)
	}
}

func TestDrawGameOverListsRows(t *testing.T) {
	ss := newTestScreen(t, 80, 24)
	r := NewRenderer(ss)
	r.DrawGameOver("Your ship was destroyed", []KV{
		{Label: "Sector reached", Value: "3"},
		{Label: "Pirates destroyed", Value: "7"},
	})
	out := screenText(ss)
	for _, want := range []string{"Your ship was destroyed", "Sector reached", "Try again"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over box missing %q", want)
		}
	}
}
