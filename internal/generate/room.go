package generate

import "space-trader/internal/gamemap"

// EmptyRoom is a single large hangar with the player in the middle.
type EmptyRoom struct{}

func (EmptyRoom) Name() string { return "room" }

func (EmptyRoom) Build(p Params) Level {
	m := gamemap.New(p.Width, p.Height)
	m.Depth = p.Depth

	room := gamemap.NewRect(1, 1, p.Width-4, p.Height-4)
	carveRoom(m, room)
	m.Rooms = append(m.Rooms, room)

	cx, cy := room.Center()
	start := gamemap.Position{X: cx, Y: cy}
	gate := placeGate(m, start)
	m.RecomputeBlocking()

	return Level{
		Map:     m,
		Start:   start,
		Gate:    gate,
		Regions: [][]gamemap.Position{openCells(m, room, start, gate)},
	}
}

// carveRoom floors the interior of room, leaving its top and left edge as
// wall.
func carveRoom(m *gamemap.Map, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if m.InBounds(x, y) {
				m.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}
