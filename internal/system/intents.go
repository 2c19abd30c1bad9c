package system

import (
	"slices"

	"space-trader/internal/ecs"
)

// Intents holds the per-tick "wants to melee" slots. Each attacker has at
// most one; a later request replaces the earlier one.
type Intents struct {
	melee map[ecs.EntityID]ecs.EntityID
}

// NewIntents returns an empty intent table.
func NewIntents() *Intents {
	return &Intents{melee: make(map[ecs.EntityID]ecs.EntityID)}
}

// WantsToMelee records that attacker will strike target during RunCombat.
func (in *Intents) WantsToMelee(attacker, target ecs.EntityID) {
	in.melee[attacker] = target
}

// Target returns the melee target for attacker, if any.
func (in *Intents) Target(attacker ecs.EntityID) (ecs.EntityID, bool) {
	t, ok := in.melee[attacker]
	return t, ok
}

// Attackers returns every attacker with a pending intent in ascending ID
// order.
func (in *Intents) Attackers() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(in.melee))
	for id := range in.melee {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len is the number of pending intents.
func (in *Intents) Len() int { return len(in.melee) }

// Clear drops every pending intent.
func (in *Intents) Clear() {
	clear(in.melee)
}
