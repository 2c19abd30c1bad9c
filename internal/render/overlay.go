package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// DrawTooltip draws a boxed list of lines next to screen cell (sx, sy),
// flipping left or up when it would leave the screen.
func (r *Renderer) DrawTooltip(sx, sy int, lines []string) {
	if len(lines) == 0 {
		return
	}
	w, h := r.screen.Size()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	boxW, boxH := width+2, len(lines)
	x := sx + 2
	if x+boxW > w {
		x = max(0, sx-boxW-1)
	}
	y := sy
	if y+boxH > h {
		y = max(0, h-boxH)
	}
	style := styleText.Background(ColorTooltip)
	r.fillRect(x, y, boxW, boxH, style)
	for i, l := range lines {
		r.drawText(x+1, y+i, width, l, style)
	}
}

// DrawInventory draws the cargo hold overlay centered on the screen.
func (r *Renderer) DrawInventory(st Status) {
	lines := []string{
		fmt.Sprintf("%s - cargo hold", st.Name),
		"",
		fmt.Sprintf("Fuel          %d", st.Stats.Fuel),
		fmt.Sprintf("Cargo         %d / %d", st.Cargo.Used, st.Stats.Storage),
		fmt.Sprintf("Free space    %d", max(0, st.Stats.Storage-st.Cargo.Used)),
		fmt.Sprintf("Salvage runs  %d", st.Cargo.Salvaged),
		"",
		"[X] or [I] to close",
	}
	r.drawBox(lines)
}

// KV is one labelled row of the game over summary.
type KV struct {
	Label, Value string
}

// DrawGameOver draws the end-of-run summary.
func (r *Renderer) DrawGameOver(title string, rows []KV) {
	lines := []string{title, ""}
	for _, kv := range rows {
		lines = append(lines, fmt.Sprintf("%-16s %s", kv.Label, kv.Value))
	}
	lines = append(lines, "", "[R] Try again   [Q] Quit")
	r.drawBox(lines)
}

// drawBox draws lines inside a bordered box in the middle of the screen.
func (r *Renderer) drawBox(lines []string) {
	w, h := r.screen.Size()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	boxW, boxH := min(width+4, w), min(len(lines)+2, h)
	x, y := max(0, (w-boxW)/2), max(0, (h-boxH)/2)

	r.fillRect(x, y, boxW, boxH, styleText)
	r.drawHLine(x, y, boxW, styleBorder)
	r.drawHLine(x, y+boxH-1, boxW, styleBorder)
	r.drawVLine(x, y, boxH, styleBorder)
	r.drawVLine(x+boxW-1, y, boxH, styleBorder)
	for i, l := range lines {
		if i+1 >= boxH-1 {
			break
		}
		r.drawText(x+2, y+1+i, boxW-4, l, styleText)
	}
}
