package generate

import (
	"math/rand"

	"space-trader/internal/gamemap"
)

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2),
// choosing at random whether the horizontal leg comes first.
func carveCorridor(m *gamemap.Map, rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	} else {
		carveV(m, y1, y2, x1)
		carveH(m, x1, x2, y2)
	}
}

func carveH(m *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(m *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}
