package gamemap

// TileType identifies the terrain of a map cell.
type TileType uint8

const (
	TilePlaceholder TileType = iota // never rendered unless generation failed
	TileWall
	TileSpace
	TileFloor
	TileAsteroid
	TilePlanet
	TileStar
	TileWarpGate // transit point to the next sector
)

// Blocks reports whether the terrain alone prevents entry.
func (t TileType) Blocks() bool {
	switch t {
	case TilePlaceholder, TileWall, TileAsteroid, TilePlanet, TileStar:
		return true
	}
	return false
}

// Transit reports whether interacting with the tile leaves the sector.
func (t TileType) Transit() bool { return t == TileWarpGate }

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileSpace:
		return "empty space"
	case TileFloor:
		return "deck plating"
	case TileAsteroid:
		return "asteroid"
	case TilePlanet:
		return "planet"
	case TileStar:
		return "star"
	case TileWarpGate:
		return "warp gate"
	}
	return "unknown"
}
