package component

import (
	"space-trader/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 6

// Renderable is what the terminal draws for an entity. Lower RenderOrder
// wins when several entities share a cell.
type Renderable struct {
	Glyph       rune
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
