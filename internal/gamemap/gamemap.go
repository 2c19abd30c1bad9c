package gamemap

import (
	"space-trader/internal/ecs"
	"space-trader/internal/invariant"
)

// Rect is an axis-aligned rectangle used for rooms and spawn regions.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Map is the spatial model of one sector: terrain, derived blocking and the
// per-cell occupancy index. All three slices are row-major and W*H long.
type Map struct {
	Width, Height int
	Depth         int
	Tiles         []TileType
	Blocked       []bool
	Occupancy     [][]ecs.EntityID
	Rooms         []Rect
}

// New creates a Map filled with walls.
func New(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:     width,
		Height:    height,
		Tiles:     make([]TileType, n),
		Blocked:   make([]bool, n),
		Occupancy: make([][]ecs.EntityID, n),
	}
	m.Fill(TileWall)
	return m
}

// Fill sets every tile to t and recomputes blocking.
func (m *Map) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
	m.RecomputeBlocking()
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellIndex maps (x, y) to its row-major index. It does not check bounds;
// callers validate with InBounds first.
func (m *Map) CellIndex(x, y int) int {
	return y*m.Width + x
}

// MustCellIndex is CellIndex with a bounds check that raises an invariant
// violation on out-of-range input.
func (m *Map) MustCellIndex(x, y int) int {
	if !m.InBounds(x, y) {
		invariant.Raise("SpatialMap", "cell out of bounds", map[string]any{
			"x": x, "y": y, "width": m.Width, "height": m.Height,
		})
	}
	return m.CellIndex(x, y)
}

// IndexToXY is the inverse of CellIndex.
func (m *Map) IndexToXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// At returns the tile type at p. Panics if out of bounds.
func (m *Map) At(p Position) TileType {
	return m.Tiles[m.MustCellIndex(p.X, p.Y)]
}

// Set replaces the tile at (x, y). Blocking is not refreshed until the next
// RecomputeBlocking or indexing pass.
func (m *Map) Set(x, y int, t TileType) {
	m.Tiles[m.MustCellIndex(x, y)] = t
}

// IsBlocked reports whether p is out of bounds or blocked.
func (m *Map) IsBlocked(p Position) bool {
	if !m.InBounds(p.X, p.Y) {
		return true
	}
	return m.Blocked[m.CellIndex(p.X, p.Y)]
}

// RecomputeBlocking resets Blocked from terrain alone. Entity blockers are
// layered on afterwards by RebuildOccupancy.
func (m *Map) RecomputeBlocking() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t.Blocks()
	}
}

// Step is one edge of the movement graph.
type Step struct {
	Pos  Position
	Cost int
}

// neighborOffsets is the fixed visiting order of the 8 surrounding cells.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the in-bounds, unblocked cells around p. Diagonal moves
// cost the same as cardinal ones.
func (m *Map) Neighbors(p Position) []Step {
	out := make([]Step, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d[0], d[1])
		if m.IsBlocked(n) {
			continue
		}
		out = append(out, Step{Pos: n, Cost: 1})
	}
	return out
}

// Cells returns every position whose tile is t, in index order.
func (m *Map) Cells(t TileType) []Position {
	var out []Position
	for i, tile := range m.Tiles {
		if tile == t {
			x, y := m.IndexToXY(i)
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}
