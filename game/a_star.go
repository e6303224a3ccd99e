package game

import (
	"container/heap"
	"math"
	"sort"
)

// TerrainGrid is a single-level passability grid with per-tile danger, used
// by the reference pathfinder.
type TerrainGrid struct {
	Width, Height int
	blocked       map[Position]bool
	danger        map[Position]int64
	guards        map[Position]SpecialAction
}

// NewTerrainGrid creates an open grid of the given size.
func NewTerrainGrid(width, height int) *TerrainGrid {
	return &TerrainGrid{
		Width:   width,
		Height:  height,
		blocked: make(map[Position]bool),
		danger:  make(map[Position]int64),
		guards:  make(map[Position]SpecialAction),
	}
}

// Block makes a tile impassable.
func (g *TerrainGrid) Block(pos Position) {
	g.blocked[pos] = true
}

// SetDanger assigns a danger score to a tile.
func (g *TerrainGrid) SetDanger(pos Position, danger int64) {
	g.danger[pos] = danger
}

// SetGuard places a blocking action on a tile; routes ending there carry it
// as their terminal blocked action.
func (g *TerrainGrid) SetGuard(pos Position, action SpecialAction) {
	g.guards[pos] = action
}

// Passable reports whether a tile is inside the grid and not blocked.
func (g *TerrainGrid) Passable(pos Position) bool {
	if pos.X < 0 || pos.Y < 0 || pos.X >= g.Width || pos.Y >= g.Height {
		return false
	}
	return !g.blocked[pos]
}

// tileNode is a node in the A* search over the terrain grid.
type tileNode struct {
	Pos       Position
	Parent    *tileNode
	Cost      float64 // g(n): movement cost from the start
	Heuristic float64 // h(n): straight-line estimate to the target
	Priority  float64 // f(n) = g + h; the queue sorts by this
	index     int
}

// tileQueue implements a min-heap of tileNodes.
type tileQueue []*tileNode

func (pq tileQueue) Len() int { return len(pq) }

func (pq tileQueue) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq tileQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *tileQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*tileNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *tileQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// TilePathfinder computes candidate routes for every known hero over a
// terrain grid. It implements the Pathfinder collaborator; the goal engine
// itself only depends on the interface.
type TilePathfinder struct {
	grid   *TerrainGrid
	heroes []*Hero
}

// NewTilePathfinder creates a pathfinder for the given heroes.
func NewTilePathfinder(grid *TerrainGrid, heroes ...*Hero) *TilePathfinder {
	return &TilePathfinder{
		grid:   grid,
		heroes: heroes,
	}
}

// PathsTo returns one route per hero that can reach the target, cheapest
// first.
func (pf *TilePathfinder) PathsTo(pos Position) []Path {
	var paths []Path
	for _, hero := range pf.heroes {
		cost, danger, ok := pf.search(hero.Pos, pos)
		if !ok {
			continue
		}
		paths = append(paths, Path{
			Hero:          hero,
			Army:          hero.Army,
			Target:        pos,
			Cost:          cost,
			Danger:        danger,
			ExchangeCount: 1,
			Blocked:       pf.grid.guards[pos],
		})
	}
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].Cost < paths[j].Cost })
	return paths
}

var tileSteps = []struct {
	dx, dy int
	cost   float64
}{
	{0, -1, 1}, {0, 1, 1}, {-1, 0, 1}, {1, 0, 1},
	{-1, -1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {1, 1, math.Sqrt2},
}

// search runs A* from start to target and returns the movement cost and the
// accumulated tile danger of the best route. The target tile is enterable
// even when blocked, so routes can end on a visitable object.
func (pf *TilePathfinder) search(start, target Position) (float64, int64, bool) {
	if start.Z != target.Z {
		return 0, 0, false
	}
	if start == target {
		return 0, 0, true
	}

	openSet := &tileQueue{}
	heap.Init(openSet)
	heap.Push(openSet, &tileNode{
		Pos:       start,
		Heuristic: start.DistanceTo(target),
		Priority:  start.DistanceTo(target),
	})

	closedSet := make(map[Position]bool)

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*tileNode)

		if current.Pos == target {
			return current.Cost, pf.routeDanger(current), true
		}

		if closedSet[current.Pos] {
			continue
		}
		closedSet[current.Pos] = true

		for _, step := range tileSteps {
			next := Position{X: current.Pos.X + step.dx, Y: current.Pos.Y + step.dy, Z: current.Pos.Z}
			if next != target && !pf.grid.Passable(next) {
				continue
			}
			if closedSet[next] {
				continue
			}

			heap.Push(openSet, &tileNode{
				Pos:       next,
				Parent:    current,
				Cost:      current.Cost + step.cost,
				Heuristic: next.DistanceTo(target),
				Priority:  current.Cost + step.cost + next.DistanceTo(target),
			})
		}
	}

	return 0, 0, false
}

// routeDanger sums the tile danger along the reconstructed route.
func (pf *TilePathfinder) routeDanger(node *tileNode) int64 {
	var total int64
	for n := node; n != nil; n = n.Parent {
		total += pf.grid.danger[n.Pos]
	}
	return total
}
