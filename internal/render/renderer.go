package render

import (
	"sort"

	"space-trader/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Layout sizes, in terminal cells.
const (
	SidebarWidth = 26
	LogHeight    = 6 // separator plus five messages
	statusHeight = 1
)

// Sprite is one entity to draw on the map.
type Sprite struct {
	Pos   gamemap.Position
	Glyph rune
	FG    tcell.Color
	Order int // lower is drawn on top
}

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the viewport after the terminal size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewW := max(0, w-SidebarWidth)
	viewH := max(0, h-statusHeight-LogHeight)
	if r.camera == nil {
		r.camera = NewCamera(0, statusHeight, viewW, viewH)
		return
	}
	r.camera.ViewWidth, r.camera.ViewHeight = viewW, viewH
}

// Camera exposes the current viewport.
func (r *Renderer) Camera() *Camera { return r.camera }

// ScreenToWorld maps a screen cell (e.g. the mouse) to the map.
func (r *Renderer) ScreenToWorld(sx, sy int) (gamemap.Position, bool) {
	return r.camera.ScreenToWorld(sx, sy)
}

// Clear blanks the screen.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawMap renders the terrain and sprites with the camera centered on focus.
func (r *Renderer) DrawMap(m *gamemap.Map, sprites []Sprite, focus gamemap.Position) {
	r.camera.Center(focus.X, focus.Y, m.Width, m.Height)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := gamemap.Position{X: x, Y: y}
			sx, sy, onScreen := r.camera.WorldToScreen(p)
			if !onScreen {
				continue
			}
			look := TileTheme[m.At(p)]
			r.screen.SetContent(sx, sy, look.Glyph, nil, tcell.StyleDefault.Foreground(look.FG))
		}
	}

	// Highest order first so the lowest ends up on top.
	sorted := make([]Sprite, len(sprites))
	copy(sorted, sprites)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order > sorted[j].Order })
	for _, s := range sorted {
		sx, sy, onScreen := r.camera.WorldToScreen(s.Pos)
		if !onScreen {
			continue
		}
		r.screen.SetContent(sx, sy, s.Glyph, nil, tcell.StyleDefault.Foreground(s.FG).Bold(true))
	}
}

// drawText writes text starting at (x, y), clipped to width columns.
// It returns the number of columns used.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	text = runewidth.Truncate(text, width, "…")
	col := 0
	for _, ch := range text {
		r.screen.SetContent(x+col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

func (r *Renderer) drawHLine(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, '─', nil, style)
	}
}

func (r *Renderer) drawVLine(x, y, height int, style tcell.Style) {
	for i := 0; i < height; i++ {
		r.screen.SetContent(x, y+i, '│', nil, style)
	}
}

// fillRect blanks a rectangle.
func (r *Renderer) fillRect(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}
