// Package layout turns an abstract maze into placed geometry: axis-aligned
// boxes for floors and wall panels in maze-local space, plus the start and
// goal positions. The whole obstacle set is rebuilt from scratch on every
// level; callers swap the previous Result out wholesale.
package layout

import (
	"tiltmaze/internal/mathx"
	"tiltmaze/internal/maze"
)

// Geometry constants in maze-local units. One cell is 1×1 on X/Z; everything
// else is sized relative to that. Fixed within a session so physics behavior
// is reproducible.
const (
	CellSize       = 1.0
	FloorThickness = 0.12
	WallThickness  = 0.06
	LevelSpacing   = 1.2 // vertical distance between the two floor centers
	WallHeadroom   = 1.0 // wall rise above the upper floor's top
	BallRadius     = 0.3
	ShellMargin    = 0.02
	restHeight     = 0.02 // gap between a spawned ball and the floor top
)

// Grid describes the horizontal footprint of the maze.
type Grid struct {
	CellsPerSide int
	CellSize     float32
	UsableSpan   float32
	CellOffset   float32 // X/Z coordinate of cell (0,0)'s center
}

// NewGrid derives the grid layout for an n×n maze centered on the origin.
func NewGrid(n int) Grid {
	span := float32(n) * CellSize
	return Grid{
		CellsPerSide: n,
		CellSize:     CellSize,
		UsableSpan:   span,
		CellOffset:   -span/2 + CellSize/2,
	}
}

// CellCenter returns the X/Z center of a cell.
func (g Grid) CellCenter(ix, iz int) (x, z float32) {
	return g.CellOffset + float32(ix)*g.CellSize, g.CellOffset + float32(iz)*g.CellSize
}

// Obstacle is an axis-aligned box in maze-local space: a floor tile or a wall
// panel. The physics integrator only reads these.
type Obstacle struct {
	Center mathx.Vec3
	Half   mathx.Vec3
}

// Bounds are the hard containment limits on the ball's center, the cube
// shell minus ball radius minus margin intersected with the maze footprint.
type Bounds struct {
	LimitX  float32
	LimitZ  float32
	BottomY float32
	TopY    float32
}

// GoalState is the goal's position and effective capture radius.
type GoalState struct {
	Pos           mathx.Vec3
	CaptureRadius float32
}

// Result is everything one level rebuild produces. Installed atomically by
// the session: the previous Result is discarded whole, never patched.
type Result struct {
	Obstacles []Obstacle
	StartPos  mathx.Vec3
	GoalPos   mathx.Vec3
	Goal      GoalState
	Bounds    Bounds
}

// floorCenterY returns the Y of a level's floor center. Levels sit symmetric
// around the origin so the cube rotates about its middle.
func floorCenterY(level int) float32 {
	return (float32(level) - 0.5) * LevelSpacing
}

// FloorTopY returns the Y of a level's floor top surface.
func FloorTopY(level int) float32 {
	return floorCenterY(level) + FloorThickness/2
}

// Build places all obstacle volumes for a generated maze. One floor box per
// cell per level, except the drop cell on the play level, which is skipped to
// leave a physical hole. One full-height panel per present wall entry; panels
// run from the lower floor's underside to one headroom above the upper floor
// so they touch both floors with no seam a ball could slip through.
func Build(ml maze.Layout, g Grid) Result {
	n := g.CellsPerSide

	wallBottom := floorCenterY(maze.LevelLower) - FloorThickness/2
	wallTop := FloorTopY(maze.LevelUpper) + WallHeadroom
	wallCenterY := (wallBottom + wallTop) / 2
	wallHalfY := (wallTop - wallBottom) / 2

	obstacles := make([]Obstacle, 0, 2*n*n+2*n*(n+1))

	// Floors.
	for level := maze.LevelLower; level <= maze.LevelUpper; level++ {
		for ix := 0; ix < n; ix++ {
			for iz := 0; iz < n; iz++ {
				if ml.Drop != nil && level == ml.Drop.Level && ix == ml.Drop.IX && iz == ml.Drop.IZ {
					continue
				}
				x, z := g.CellCenter(ix, iz)
				obstacles = append(obstacles, Obstacle{
					Center: mathx.V3(x, floorCenterY(level), z),
					Half:   mathx.V3(g.CellSize/2, FloorThickness/2, g.CellSize/2),
				})
			}
		}
	}

	// Vertical panels: walls between columns, constant X.
	for ix := 0; ix <= n; ix++ {
		for iz := 0; iz < n; iz++ {
			if !ml.Walls.Vertical[ix][iz] {
				continue
			}
			_, z := g.CellCenter(0, iz)
			x := g.CellOffset + (float32(ix)-0.5)*g.CellSize
			obstacles = append(obstacles, Obstacle{
				Center: mathx.V3(x, wallCenterY, z),
				// Panels overhang half a wall thickness on each end so
				// intersections leave no corner gaps.
				Half: mathx.V3(WallThickness/2, wallHalfY, g.CellSize/2+WallThickness/2),
			})
		}
	}

	// Horizontal panels: walls between rows, constant Z.
	for ix := 0; ix < n; ix++ {
		for iz := 0; iz <= n; iz++ {
			if !ml.Walls.Horizontal[ix][iz] {
				continue
			}
			x, _ := g.CellCenter(ix, 0)
			z := g.CellOffset + (float32(iz)-0.5)*g.CellSize
			obstacles = append(obstacles, Obstacle{
				Center: mathx.V3(x, wallCenterY, z),
				Half:   mathx.V3(g.CellSize/2+WallThickness/2, wallHalfY, WallThickness/2),
			})
		}
	}

	startX, startZ := g.CellCenter(ml.Start.IX, ml.Start.IZ)
	startPos := mathx.V3(startX, FloorTopY(ml.Start.Level)+BallRadius+restHeight, startZ)

	goalX, goalZ := g.CellCenter(ml.Goal.IX, ml.Goal.IZ)
	goalPos := mathx.V3(goalX, floorCenterY(ml.Goal.Level), goalZ)

	limit := g.UsableSpan/2 - BallRadius - ShellMargin
	bounds := Bounds{
		LimitX:  limit,
		LimitZ:  limit,
		BottomY: wallBottom + BallRadius,
		TopY:    wallTop - BallRadius - ShellMargin,
	}

	return Result{
		Obstacles: obstacles,
		StartPos:  startPos,
		GoalPos:   goalPos,
		Goal: GoalState{
			Pos:           goalPos,
			CaptureRadius: 0.45 * g.CellSize,
		},
		Bounds: bounds,
	}
}
