// Package maze generates the two-level maze the ball rolls through: a
// randomized spanning-tree carve over an N×N grid, a farthest-cell search
// that places the goal, and an optional drop cell where the upper floor is
// left open so the ball can fall to the lower level.
package maze

import (
	"fmt"
	"math/rand"
)

// Level indices. The ball starts on the upper (play) level; the goal sits on
// the lower level whenever a drop hole exists.
const (
	LevelLower = 0
	LevelUpper = 1
)

// Cell addresses one grid unit of the maze by column, row, and level.
type Cell struct {
	IX, IZ int
	Level  int
}

// Walls holds wall presence for an N×N grid. Vertical[ix][iz] (ix in [0..N])
// is the wall between column ix-1 and column ix at row iz; Horizontal[ix][iz]
// (iz in [0..N]) is the wall between row iz-1 and row iz at column ix.
// Both levels share one wall grid: panels span the full height of both.
type Walls struct {
	Vertical   [][]bool
	Horizontal [][]bool
}

// NewWalls returns an n×n wall grid with every wall present.
func NewWalls(n int) Walls {
	v := make([][]bool, n+1)
	for ix := range v {
		v[ix] = make([]bool, n)
		for iz := range v[ix] {
			v[ix][iz] = true
		}
	}
	h := make([][]bool, n)
	for ix := range h {
		h[ix] = make([]bool, n+1)
		for iz := range h[ix] {
			h[ix][iz] = true
		}
	}
	return Walls{Vertical: v, Horizontal: h}
}

// Layout is the output of one generation run. It is created fresh on every
// level rebuild and never mutated afterwards.
type Layout struct {
	Start Cell  // always on the upper level, at the carve's starting cell
	Goal  Cell  // lower level iff Drop is set
	Drop  *Cell // upper-level cell whose floor is skipped, or nil
	Walls Walls
	// Path is the unique tree path from Start to the farthest cell, in grid
	// coordinates on the carve graph. Kept for tests and debug drawing.
	Path []Cell
}

// grid directions, von Neumann neighborhood
var dirs = [4]struct{ dx, dz int }{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Generate carves a random spanning-tree maze over an n×n grid and picks
// start, goal, and drop cells. It is a pure function of n and the draws taken
// from rng. n must be at least 2.
func Generate(n int, rng *rand.Rand) (Layout, error) {
	if n < 2 {
		return Layout{}, fmt.Errorf("maze: cellsPerSide must be >= 2, got %d", n)
	}

	walls := NewWalls(n)
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	// Recursive backtracker: depth-first carve with an explicit stack.
	type point struct{ ix, iz int }
	start := point{rng.Intn(n), rng.Intn(n)}
	visited[start.ix][start.iz] = true
	stack := []point{start}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]point, 0, 4)
		for _, d := range dirs {
			nx, nz := curr.ix+d.dx, curr.iz+d.dz
			if nx >= 0 && nx < n && nz >= 0 && nz < n && !visited[nx][nz] {
				candidates = append(candidates, point{nx, nz})
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		clearWall(&walls, curr.ix, curr.iz, next.ix, next.iz)
		visited[next.ix][next.iz] = true
		stack = append(stack, next)
	}

	// BFS over the cleared-wall adjacency from the carve start. The farthest
	// cell becomes the goal; only a strictly greater distance replaces it, so
	// the first cell to reach the maximum wins.
	dist, prev := bfs(walls, n, start.ix, start.iz)
	farX, farZ := start.ix, start.iz
	best := 0
	for ix := 0; ix < n; ix++ {
		for iz := 0; iz < n; iz++ {
			if dist[ix][iz] > best {
				best = dist[ix][iz]
				farX, farZ = ix, iz
			}
		}
	}

	// Reconstruct the unique tree path start → farthest.
	var path []Cell
	for ix, iz := farX, farZ; ; {
		path = append([]Cell{{IX: ix, IZ: iz, Level: LevelUpper}}, path...)
		if ix == start.ix && iz == start.iz {
			break
		}
		p := prev[ix][iz]
		ix, iz = p[0], p[1]
	}

	out := Layout{
		Start: Cell{IX: start.ix, IZ: start.iz, Level: LevelUpper},
		Goal:  Cell{IX: farX, IZ: farZ, Level: LevelUpper},
		Walls: walls,
		Path:  path,
	}

	// A long enough path gets a drop hole at its midpoint; reaching the goal
	// then requires falling through to the lower level.
	if len(path) >= 3 {
		mid := path[len(path)/2]
		drop := Cell{IX: mid.IX, IZ: mid.IZ, Level: LevelUpper}
		out.Drop = &drop
		out.Goal.Level = LevelLower
	}

	return out, nil
}

// clearWall removes the wall between two adjacent cells.
func clearWall(w *Walls, ax, az, bx, bz int) {
	switch {
	case bx == ax+1:
		w.Vertical[bx][az] = false
	case bx == ax-1:
		w.Vertical[ax][az] = false
	case bz == az+1:
		w.Horizontal[ax][bz] = false
	default:
		w.Horizontal[ax][az] = false
	}
}

// Open reports whether the wall between two adjacent cells has been cleared.
func (w Walls) Open(ax, az, bx, bz int) bool {
	switch {
	case bx == ax+1:
		return !w.Vertical[bx][az]
	case bx == ax-1:
		return !w.Vertical[ax][az]
	case bz == az+1:
		return !w.Horizontal[ax][bz]
	case bz == az-1:
		return !w.Horizontal[ax][az]
	}
	return false
}

// Distances runs a BFS over the cleared-wall adjacency and returns the
// distance matrix from (sx, sz). Unreached cells hold -1.
func Distances(w Walls, n, sx, sz int) [][]int {
	dist, _ := bfs(w, n, sx, sz)
	return dist
}

func bfs(w Walls, n, sx, sz int) (dist [][]int, prev [][][2]int) {
	dist = make([][]int, n)
	prev = make([][][2]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		prev[i] = make([][2]int, n)
		for j := range dist[i] {
			dist[i][j] = -1
		}
	}
	dist[sx][sz] = 0

	queue := [][2]int{{sx, sz}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		cx, cz := curr[0], curr[1]

		for _, d := range dirs {
			nx, nz := cx+d.dx, cz+d.dz
			if nx < 0 || nx >= n || nz < 0 || nz >= n {
				continue
			}
			if dist[nx][nz] >= 0 || !w.Open(cx, cz, nx, nz) {
				continue
			}
			dist[nx][nz] = dist[cx][cz] + 1
			prev[nx][nz] = [2]int{cx, cz}
			queue = append(queue, [2]int{nx, nz})
		}
	}
	return dist, prev
}

// ClearedWalls counts interior walls that have been carved open. A spanning
// tree over n² cells clears exactly n²−1 of them.
func (w Walls) ClearedWalls() int {
	count := 0
	for ix := 1; ix < len(w.Vertical)-1; ix++ {
		for _, present := range w.Vertical[ix] {
			if !present {
				count++
			}
		}
	}
	for _, col := range w.Horizontal {
		for iz := 1; iz < len(col)-1; iz++ {
			if !col[iz] {
				count++
			}
		}
	}
	return count
}
