package render

import (
	"space-trader/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileLook is how one terrain type is drawn.
type TileLook struct {
	Glyph rune
	FG    tcell.Color
}

// TileTheme maps every terrain type to its look.
var TileTheme = map[gamemap.TileType]TileLook{
	gamemap.TilePlaceholder: {'?', tcell.ColorFuchsia},
	gamemap.TileWall:        {'#', tcell.ColorSilver},
	gamemap.TileSpace:       {'.', tcell.ColorNavy},
	gamemap.TileFloor:       {'.', tcell.ColorGray},
	gamemap.TileAsteroid:    {'o', tcell.ColorOlive},
	gamemap.TilePlanet:      {'O', tcell.ColorDodgerBlue},
	gamemap.TileStar:        {'*', tcell.ColorYellow},
	gamemap.TileWarpGate:    {'>', tcell.ColorAqua},
}

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleLog    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// ColorTooltip is the tooltip background.
var ColorTooltip = tcell.ColorDarkSlateGray
