package system

import (
	"space-trader/internal/gamemap"
	"space-trader/internal/invariant"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Path is a route across the map. Steps[0] is the start cell and the last
// element is the goal, so len(Steps) == 2 means the two are adjacent.
type Path struct {
	Steps []gamemap.Position
	Cost  int
}

// Len is the number of cells on the path, endpoints included.
func (p Path) Len() int { return len(p.Steps) }

type pathNode struct {
	pos  gamemap.Position
	g, f int
	dist int // exact |dx|+|dy| to goal, a secondary tie-break
}

func lessNode(a, b pathNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.pos.Less(b.pos)
}

// heuristic is (|dx|+|dy|)/3. Diagonal steps cost 1, so the plain sum would
// overestimate; dividing by 3 keeps it admissible.
func heuristic(a, b gamemap.Position) int {
	return a.Distance(b) / 3
}

// FindPath runs A* from start to goal over the 8-connected movement graph
// of m. The goal cell is admitted even when blocked, because it is usually
// the target's own cell. It returns false when the goal is unreachable.
// start == goal is an invariant violation.
func FindPath(start, goal gamemap.Position, m *gamemap.Map) (Path, bool) {
	if start == goal {
		invariant.Raise("Pathfinding", "actor overlaps its goal", map[string]any{
			"start": start, "goal": goal,
		})
	}
	if !m.InBounds(goal.X, goal.Y) || !m.InBounds(start.X, start.Y) {
		return Path{}, false
	}

	open := heap.New(lessNode)
	open.Push(pathNode{pos: start, f: heuristic(start, goal), dist: start.Distance(goal)})
	closed := mapset.New[gamemap.Position]()
	gScore := map[gamemap.Position]int{start: 0}
	cameFrom := make(map[gamemap.Position]gamemap.Position)

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.pos) {
			continue
		}
		closed.Put(cur.pos)
		if cur.pos == goal {
			return Path{Steps: reconstructPath(cameFrom, start, goal), Cost: cur.g}, true
		}

		for _, step := range successors(m, cur.pos, goal) {
			if closed.Has(step.Pos) {
				continue
			}
			g := cur.g + step.Cost
			if prev, ok := gScore[step.Pos]; ok && g >= prev {
				continue
			}
			gScore[step.Pos] = g
			cameFrom[step.Pos] = cur.pos
			open.Push(pathNode{
				pos:  step.Pos,
				g:    g,
				f:    g + heuristic(step.Pos, goal),
				dist: step.Pos.Distance(goal),
			})
		}
	}
	return Path{}, false
}

// successors is Map.Neighbors plus the goal cell when it is adjacent but
// blocked.
func successors(m *gamemap.Map, p, goal gamemap.Position) []gamemap.Step {
	steps := m.Neighbors(p)
	if p.Adjacent(goal) && m.IsBlocked(goal) && m.InBounds(goal.X, goal.Y) {
		steps = append(steps, gamemap.Step{Pos: goal, Cost: 1})
	}
	return steps
}

func reconstructPath(cameFrom map[gamemap.Position]gamemap.Position, start, goal gamemap.Position) []gamemap.Position {
	path := []gamemap.Position{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}
