package component

import "space-trader/internal/ecs"

const CName ecs.ComponentType = 7

// Name is the in-game name of an entity. Long is optional.
type Name struct {
	Short string
	Long  string
}

func (Name) Type() ecs.ComponentType { return CName }

// Display returns the long name when set, otherwise the short one.
func (n Name) Display() string {
	if n.Long != "" {
		return n.Long
	}
	return n.Short
}
