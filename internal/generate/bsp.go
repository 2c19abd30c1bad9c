package generate

import (
	"math/rand"

	"space-trader/internal/gamemap"
)

// BSP is a derelict station: rooms carved into the leaves of a binary
// space partition and joined by corridors. The player enters in the first
// room and the warp gate sits in the last one.
type BSP struct {
	MinLeaf, MaxLeaf int // zero values use 8 and 20
	MinRoom          int // zero value uses 4
}

func (BSP) Name() string { return "bsp" }

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

type bspRun struct {
	minLeaf, maxLeaf, minRoom int
	rng                       *rand.Rand
	m                         *gamemap.Map
}

// split divides the leaf into two children, returning false when the leaf
// is too small.
func (l *bspLeaf) split(b *bspRun) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	splitH := b.rng.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := b.minLeaf, size-b.minLeaf
	if lo >= hi {
		return false
	}
	at := lo + b.rng.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room inside every terminal leaf, keeping a one
// cell margin so neighbouring rooms never touch.
func (l *bspLeaf) createRooms(b *bspRun) {
	if l.left != nil || l.right != nil {
		for _, c := range []*bspLeaf{l.left, l.right} {
			if c != nil {
				c.createRooms(b)
			}
		}
		return
	}

	availW, availH := l.W-2, l.H-2
	if availW < b.minRoom || availH < b.minRoom {
		return
	}
	rw := b.minRoom + b.rng.Intn(availW-b.minRoom+1)
	rh := b.minRoom + b.rng.Intn(availH-b.minRoom+1)
	rx := l.X + 1 + b.rng.Intn(availW-rw+1)
	ry := l.Y + 1 + b.rng.Intn(availH-rh+1)

	// Keep the outer ring of the map solid.
	rx, ry = max(rx, 1), max(ry, 1)
	rw = min(rw, b.m.Width-1-rx)
	rh = min(rh, b.m.Height-1-ry)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			b.m.Set(x, y, gamemap.TileFloor)
		}
	}
	b.m.Rooms = append(b.m.Rooms, room)
}

// getRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	for _, c := range []*bspLeaf{l.left, l.right} {
		if c == nil {
			continue
		}
		if r := c.getRoom(); r != nil {
			return r
		}
	}
	return nil
}

// connectChildren carves corridors between the two children of every split.
func (l *bspLeaf) connectChildren(b *bspRun) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(b)
	l.right.connectChildren(b)

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := lRoom.Center()
	rx, ry := rRoom.Center()
	carveCorridor(b.m, b.rng, lx, ly, rx, ry)
}

func (g BSP) Build(p Params) Level {
	b := &bspRun{
		minLeaf: orDefault(g.MinLeaf, 8),
		maxLeaf: orDefault(g.MaxLeaf, 20),
		minRoom: orDefault(g.MinRoom, 4),
		rng:     p.Rand,
		m:       gamemap.New(p.Width, p.Height),
	}
	b.m.Depth = p.Depth

	root := &bspLeaf{W: p.Width, H: p.Height}
	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > b.maxLeaf || leaf.H > b.maxLeaf || b.rng.Float64() > 0.25 {
				if leaf.split(b) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(b)
	root.connectChildren(b)
	m := b.m

	if len(m.Rooms) == 0 {
		// Too small to partition; fall back to a single hangar.
		room := gamemap.NewRect(1, 1, p.Width-4, p.Height-4)
		carveRoom(m, room)
		m.Rooms = append(m.Rooms, room)
	}

	sx, sy := m.Rooms[0].Center()
	start := gamemap.Position{X: sx, Y: sy}
	var gate gamemap.Position
	if len(m.Rooms) > 1 {
		gx, gy := m.Rooms[len(m.Rooms)-1].Center()
		gate = gamemap.Position{X: gx, Y: gy}
		m.Set(gx, gy, gamemap.TileWarpGate)
	} else {
		gate = placeGate(m, start)
	}
	m.RecomputeBlocking()

	var regions [][]gamemap.Position
	for _, room := range m.Rooms[1:] {
		regions = append(regions, openCells(m, room, start, gate))
	}
	return Level{Map: m, Start: start, Gate: gate, Regions: regions}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
