package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiltmaze/internal/maze"
)

func TestNewGridCentersCells(t *testing.T) {
	g := NewGrid(4)
	assert.Equal(t, 4, g.CellsPerSide)
	assert.InDelta(t, 4.0, g.UsableSpan, 1e-6)
	assert.InDelta(t, -1.5, g.CellOffset, 1e-6)

	// Outermost cell centers are symmetric about the origin.
	x0, z0 := g.CellCenter(0, 0)
	x3, z3 := g.CellCenter(3, 3)
	assert.InDelta(t, -x3, x0, 1e-6)
	assert.InDelta(t, -z3, z0, 1e-6)
}

func TestBuildObstacleCounts(t *testing.T) {
	n := 4
	ml, err := maze.Generate(n, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	res := Build(ml, NewGrid(n))

	floors := 0
	panels := 0
	for _, o := range res.Obstacles {
		if o.Half.Y == FloorThickness/2 {
			floors++
		} else {
			panels++
		}
	}

	wantFloors := 2 * n * n
	if ml.Drop != nil {
		wantFloors--
	}
	assert.Equal(t, wantFloors, floors)

	// Panels: all boundary walls plus the interior walls the carve kept.
	// A spanning tree clears n²−1 of the 2n(n−1) interior walls.
	wantPanels := 4*n + (2*n*(n-1) - (n*n - 1))
	assert.Equal(t, wantPanels, panels)
}

func TestBuildSkipsDropFloorOnly(t *testing.T) {
	// Find a generation with a drop hole.
	var ml maze.Layout
	var err error
	for seed := int64(1); ; seed++ {
		ml, err = maze.Generate(4, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		if ml.Drop != nil {
			break
		}
	}

	g := NewGrid(4)
	res := Build(ml, g)

	dropX, dropZ := g.CellCenter(ml.Drop.IX, ml.Drop.IZ)
	upperY := FloorTopY(maze.LevelUpper) - FloorThickness/2
	lowerY := FloorTopY(maze.LevelLower) - FloorThickness/2

	foundUpper, foundLower := false, false
	for _, o := range res.Obstacles {
		if o.Half.Y != FloorThickness/2 {
			continue
		}
		if near(o.Center.X, dropX) && near(o.Center.Z, dropZ) {
			if near(o.Center.Y, upperY) {
				foundUpper = true
			}
			if near(o.Center.Y, lowerY) {
				foundLower = true
			}
		}
	}
	assert.False(t, foundUpper, "drop cell must have no floor on the play level")
	assert.True(t, foundLower, "drop cell keeps its lower-level floor")
}

func TestWallPanelsTouchBothFloors(t *testing.T) {
	ml, err := maze.Generate(3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	res := Build(ml, NewGrid(3))

	lowerUnderside := FloorTopY(maze.LevelLower) - FloorThickness
	upperTop := FloorTopY(maze.LevelUpper)

	for _, o := range res.Obstacles {
		if o.Half.Y == FloorThickness/2 {
			continue
		}
		bottom := o.Center.Y - o.Half.Y
		top := o.Center.Y + o.Half.Y
		assert.LessOrEqual(t, float64(bottom), float64(lowerUnderside)+1e-6,
			"panel bottom must reach the lower floor")
		assert.GreaterOrEqual(t, float64(top), float64(upperTop)-1e-6,
			"panel top must rise past the upper floor")
	}
}

func TestStartAndGoalPositions(t *testing.T) {
	ml, err := maze.Generate(4, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	g := NewGrid(4)
	res := Build(ml, g)

	sx, sz := g.CellCenter(ml.Start.IX, ml.Start.IZ)
	assert.InDelta(t, sx, res.StartPos.X, 1e-6)
	assert.InDelta(t, sz, res.StartPos.Z, 1e-6)
	// Ball spawns resting just above the play floor.
	assert.Greater(t, res.StartPos.Y, FloorTopY(maze.LevelUpper)+BallRadius-1e-6)

	gx, gz := g.CellCenter(ml.Goal.IX, ml.Goal.IZ)
	assert.InDelta(t, gx, res.GoalPos.X, 1e-6)
	assert.InDelta(t, gz, res.GoalPos.Z, 1e-6)
	assert.Equal(t, res.GoalPos, res.Goal.Pos)
	assert.InDelta(t, 0.45*g.CellSize, res.Goal.CaptureRadius, 1e-6)

	// A ball resting on the goal floor sits inside the win band.
	resting := FloorTopY(ml.Goal.Level) + BallRadius
	assert.Greater(t, resting, res.GoalPos.Y)
	assert.Less(t, resting, res.GoalPos.Y+FloorThickness+1.5*BallRadius)
}

func TestBuildIdempotent(t *testing.T) {
	ml, err := maze.Generate(3, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	g := NewGrid(3)

	a := Build(ml, g)
	b := Build(ml, g)
	assert.Equal(t, a, b, "Build must be a pure function of its inputs")
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}
