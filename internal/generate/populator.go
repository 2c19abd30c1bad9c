package generate

import (
	"math/rand"
	"slices"

	"space-trader/internal/gamemap"
)

// Spawn is one entity the caller should create.
type Spawn struct {
	Name string
	Pos  gamemap.Position
}

// SpawnRegion rolls between 1 and maxSpawns entities from table onto
// distinct cells of region. An empty region yields nothing.
func SpawnRegion(rng *rand.Rand, region []gamemap.Position, table *RandomTable, maxSpawns int) []Spawn {
	if len(region) == 0 || maxSpawns < 1 {
		return nil
	}
	n := min(len(region), 1+rng.Intn(maxSpawns))
	cells := slices.Clone(region)
	out := make([]Spawn, 0, n)
	for k := 0; k < n; k++ {
		i := rng.Intn(len(cells))
		if name := table.Roll(rng); name != "" {
			out = append(out, Spawn{Name: name, Pos: cells[i]})
		}
		cells = slices.Delete(cells, i, i+1)
	}
	return out
}

// Populate runs SpawnRegion over every region of the level.
func Populate(level Level, rng *rand.Rand, table *RandomTable, maxSpawns int) []Spawn {
	var out []Spawn
	for _, region := range level.Regions {
		out = append(out, SpawnRegion(rng, region, table, maxSpawns)...)
	}
	return out
}
