package render

import (
	"fmt"
	"strings"

	"space-trader/internal/component"
	"space-trader/internal/gamelog"
	"space-trader/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Status is what the sidebar shows about the player's ship.
type Status struct {
	Name     string
	Depth    int
	Tick     uint64
	Pos      gamemap.Position
	Terrain  string
	Stats    component.ShipStats
	Cargo    component.Cargo
	Hostiles int
}

// DrawStatusLine renders text across the top row.
func (r *Renderer) DrawStatusLine(text string) {
	w, _ := r.screen.Size()
	r.fillRect(0, 0, w, 1, styleText.Reverse(true))
	r.drawText(1, 0, w-2, text, styleText.Reverse(true))
}

// DrawSidebar renders the ship panel on the right edge.
func (r *Renderer) DrawSidebar(st Status) {
	w, h := r.screen.Size()
	x0 := w - SidebarWidth
	if x0 < 0 {
		return
	}
	height := h - statusHeight - LogHeight
	r.drawVLine(x0, statusHeight, height, styleBorder)

	x, width := x0+2, SidebarWidth-3
	y := statusHeight
	line := func(label, value string, style tcell.Style) {
		if y >= statusHeight+height {
			return
		}
		n := r.drawText(x, y, width, label, styleLabel)
		r.drawText(x+n, y, width-n, value, style)
		y++
	}

	r.drawText(x, y, width, st.Name, styleText.Bold(true))
	y += 2
	s := st.Stats
	line("Hull    ", bar(s.CurrHealth, s.MaxHealth, 10), healthStyle(s.CurrHealth, s.MaxHealth))
	line("        ", fmt.Sprintf("%d/%d", max(s.CurrHealth, 0), s.MaxHealth), styleText)
	line("Shields ", bar(s.CurrShields, s.MaxShields, 10), styleGood)
	line("Armor   ", fmt.Sprintf("%d", s.Armor), styleText)
	line("Melee   ", fmt.Sprintf("%d dmg / %d ticks", s.MeleeDmg, s.MeleeSpeed), styleText)
	line("Speed   ", fmt.Sprintf("%d ticks", s.Speed), styleText)
	line("Fuel    ", fmt.Sprintf("%d", s.Fuel), styleText)
	line("Cargo   ", fmt.Sprintf("%d/%d", st.Cargo.Used, s.Storage), styleText)
	y++
	line("Sector  ", fmt.Sprintf("%d", st.Depth), styleText)
	line("Tick    ", fmt.Sprintf("%d", st.Tick), styleText)
	line("Pos     ", st.Pos.String(), styleText)
	line("Here    ", st.Terrain, styleDim)
	if st.Hostiles > 0 {
		line("Hostiles", fmt.Sprintf(" %d", st.Hostiles), styleAlert)
	}
}

// DrawLog renders the newest entries at the bottom of the screen, newest
// last.
func (r *Renderer) DrawLog(entries []gamelog.Entry) {
	w, h := r.screen.Size()
	y0 := h - LogHeight
	if y0 < 0 {
		return
	}
	r.drawHLine(0, y0, w, styleBorder)
	rows := LogHeight - 1
	start := max(0, len(entries)-rows)
	for i, e := range entries[start:] {
		r.drawText(1, y0+1+i, w-2, e.String(), styleLog)
	}
}

// bar draws a fixed-width gauge such as [######    ].
func bar(cur, maxVal, width int) string {
	if maxVal <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	filled := max(0, min(width, cur*width/maxVal))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

func healthStyle(cur, maxVal int) tcell.Style {
	if maxVal > 0 && cur*3 <= maxVal {
		return styleAlert
	}
	return styleGood
}
