package generate

import (
	"fmt"
	"math/rand"

	"space-trader/internal/gamemap"
)

// safeRadius keeps spawns this many cells (Chebyshev) away from the start.
const safeRadius = 3

// Level is a freshly built sector: the map, the player's entry cell, the
// warp gate and the regions pirates may spawn in.
type Level struct {
	Map     *gamemap.Map
	Start   gamemap.Position
	Gate    gamemap.Position
	Regions [][]gamemap.Position
}

// Params are the inputs every builder receives.
type Params struct {
	Width, Height int
	Depth         int
	Rand          *rand.Rand
}

// Builder produces one kind of sector.
type Builder interface {
	Name() string
	Build(p Params) Level
}

// ByName returns the builder registered under name.
func ByName(name string) (Builder, error) {
	switch name {
	case "space":
		return EmptySpace{}, nil
	case "room":
		return EmptyRoom{}, nil
	case "bsp":
		return BSP{}, nil
	case "random":
		return Random{}, nil
	}
	return nil, fmt.Errorf("unknown map builder %q", name)
}

// Random delegates each build to one of the concrete builders.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Build(p Params) Level {
	builders := []Builder{EmptySpace{}, EmptyRoom{}, BSP{}}
	return builders[p.Rand.Intn(len(builders))].Build(p)
}

// openCells returns the cells of r (inclusive) that can hold a ship, are
// not the gate and lie outside the safe radius around start.
func openCells(m *gamemap.Map, r gamemap.Rect, start, gate gamemap.Position) []gamemap.Position {
	var out []gamemap.Position
	for y := max(r.Y1, 0); y <= min(r.Y2, m.Height-1); y++ {
		for x := max(r.X1, 0); x <= min(r.X2, m.Width-1); x++ {
			p := gamemap.Position{X: x, Y: y}
			t := m.At(p)
			if t.Blocks() || t.Transit() || p == gate {
				continue
			}
			if max(abs(p.X-start.X), abs(p.Y-start.Y)) <= safeRadius {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// placeGate turns the open cell farthest from start into the warp gate.
// Ties go to the first cell in index order.
func placeGate(m *gamemap.Map, start gamemap.Position) gamemap.Position {
	best, bestDist := start, -1
	for i, t := range m.Tiles {
		if t.Blocks() {
			continue
		}
		x, y := m.IndexToXY(i)
		p := gamemap.Position{X: x, Y: y}
		if d := p.Distance(start); d > bestDist {
			best, bestDist = p, d
		}
	}
	m.Set(best.X, best.Y, gamemap.TileWarpGate)
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
