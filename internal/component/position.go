package component

import (
	"space-trader/internal/ecs"
	"space-trader/internal/gamemap"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Cell converts the component to a map coordinate.
func (p Position) Cell() gamemap.Position { return gamemap.Position{X: p.X, Y: p.Y} }

// At builds a Position component from a map coordinate.
func At(p gamemap.Position) Position { return Position{X: p.X, Y: p.Y} }
