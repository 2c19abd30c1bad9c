package generate

import (
	"math"

	"space-trader/internal/gamemap"
)

// EmptySpace is an open star system: a star at the center, one to five
// planets on distinct orbits and, half the time, an asteroid field.
type EmptySpace struct{}

func (EmptySpace) Name() string { return "space" }

func (EmptySpace) Build(p Params) Level {
	m := gamemap.New(p.Width, p.Height)
	m.Depth = p.Depth
	m.Fill(gamemap.TileSpace)
	rng := p.Rand

	cx, cy := p.Width/2, p.Height/2
	m.Set(cx, cy, gamemap.TileStar)

	maxRadius := min(cx, cy)
	radii := rng.Perm(maxRadius - 1) // orbits 1..maxRadius-1
	planets := min(1+rng.Intn(5), len(radii))
	for _, r := range radii[:planets] {
		r++
		angle := rng.Float64() * 2 * math.Pi
		x := cx + int(math.Round(math.Cos(angle)*float64(r)))
		y := cy + int(math.Round(math.Sin(angle)*float64(r)))
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.TilePlanet)
		}
	}

	if rng.Intn(2) == 0 {
		n := 20 + rng.Intn(21)
		if rng.Float64() < 0.8 {
			n = 1 + rng.Intn(5)
		}
		for k := 0; k < n; k++ {
			for tries := 0; tries < 500; tries++ {
				idx := rng.Intn(len(m.Tiles))
				if m.Tiles[idx] == gamemap.TileSpace {
					m.Tiles[idx] = gamemap.TileAsteroid
					break
				}
			}
		}
	}

	start := spaceStart(m)
	gate := placeGate(m, start)
	m.RecomputeBlocking()

	// One spawn region per quadrant.
	quads := []gamemap.Rect{
		{X1: 0, Y1: 0, X2: cx - 1, Y2: cy - 1},
		{X1: cx, Y1: 0, X2: p.Width - 1, Y2: cy - 1},
		{X1: 0, Y1: cy, X2: cx - 1, Y2: p.Height - 1},
		{X1: cx, Y1: cy, X2: p.Width - 1, Y2: p.Height - 1},
	}
	regions := make([][]gamemap.Position, 0, len(quads))
	for _, q := range quads {
		regions = append(regions, openCells(m, q, start, gate))
	}

	return Level{Map: m, Start: start, Gate: gate, Regions: regions}
}

// spaceStart is the open cell nearest the middle of the left edge.
func spaceStart(m *gamemap.Map) gamemap.Position {
	want := gamemap.Position{X: 1, Y: m.Height / 2}
	best, bestDist := want, -1
	for i, t := range m.Tiles {
		if t.Blocks() {
			continue
		}
		x, y := m.IndexToXY(i)
		p := gamemap.Position{X: x, Y: y}
		if d := p.Distance(want); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
