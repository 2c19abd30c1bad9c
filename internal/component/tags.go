package component

import "space-trader/internal/ecs"

const (
	CTagPlayer    ecs.ComponentType = 8
	CTagPirate    ecs.ComponentType = 9
	CTagShip      ecs.ComponentType = 10
	CTagBlockTile ecs.ComponentType = 11
	CTagDebris    ecs.ComponentType = 12
)

// TagPlayer marks the player ship. Exactly one exists per session.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagPirate marks hostile ships driven by the pirate AI.
type TagPirate struct{}

func (TagPirate) Type() ecs.ComponentType { return CTagPirate }

// TagShip marks anything that can fight and die.
type TagShip struct{}

func (TagShip) Type() ecs.ComponentType { return CTagShip }

// TagBlockTile marks an entity that occupies and blocks its cell.
type TagBlockTile struct{}

func (TagBlockTile) Type() ecs.ComponentType { return CTagBlockTile }

// TagDebris marks wreckage left behind by a destroyed pirate.
type TagDebris struct{}

func (TagDebris) Type() ecs.ComponentType { return CTagDebris }
