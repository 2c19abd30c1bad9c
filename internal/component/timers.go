package component

import "space-trader/internal/ecs"

const (
	CWaitTimer   ecs.ComponentType = 3
	CHealthTimer ecs.ComponentType = 4
	CShieldTimer ecs.ComponentType = 5
)

// WaitTimer is the number of ticks until the entity may act again.
type WaitTimer struct {
	Turns int
}

func (WaitTimer) Type() ecs.ComponentType { return CWaitTimer }

// HealthTimer counts down to the next point of hull regeneration.
type HealthTimer struct {
	Turns int
}

func (HealthTimer) Type() ecs.ComponentType { return CHealthTimer }

// ShieldTimer counts down to the next point of shield regeneration.
type ShieldTimer struct {
	Turns int
}

func (ShieldTimer) Type() ecs.ComponentType { return CShieldTimer }
