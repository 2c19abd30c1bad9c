package gamemap

import "fmt"

// Position is an (x, y) grid coordinate. It is comparable and usable as a
// map key; Less gives the total order used for deterministic tie-breaks.
type Position struct {
	X, Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Less orders positions by X, then Y.
func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Add offsets p by (dx, dy).
func (p Position) Add(dx, dy int) Position { return Position{X: p.X + dx, Y: p.Y + dy} }

// Distance is |dx| + |dy|.
func (p Position) Distance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Adjacent reports whether o is one of the 8 cells around p.
func (p Position) Adjacent(o Position) bool {
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	return p != o && dx <= 1 && dy <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
