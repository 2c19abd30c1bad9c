package component

import "space-trader/internal/ecs"

const CCargo ecs.ComponentType = 14

// Cargo is the contents of a ship's hold. Used is bounded by ShipStats.Storage.
type Cargo struct {
	Used     int
	Salvaged int // debris fields recovered this run
}

func (Cargo) Type() ecs.ComponentType { return CCargo }
