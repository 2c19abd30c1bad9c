package component

import "space-trader/internal/ecs"

const CSalvage ecs.ComponentType = 13

// Salvage is what a debris field yields when the player recovers it.
type Salvage struct {
	Fuel  int
	Cargo int
}

func (Salvage) Type() ecs.ComponentType { return CSalvage }
