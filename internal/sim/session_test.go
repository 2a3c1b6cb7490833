package sim

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiltmaze/internal/layout"
	"tiltmaze/internal/mathx"
	"tiltmaze/internal/presets"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := New(presets.Default(), log, 7)
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := presets.Default()
	cfg.Physics.Gravity = -1
	_, err := New(cfg, nil, 1)
	assert.Error(t, err)
}

func TestMenuPhaseDoesNotIntegrate(t *testing.T) {
	s := newTestSession(t)
	require.Equal(t, PhaseMenu, s.Phase())

	before := s.Ball()
	assert.Nil(t, s.Tick(1.0/60.0, mathx.QuatIdentity()))
	assert.Equal(t, before, s.Ball())
}

func TestSelectDifficultyEntersRunning(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Medium))

	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, presets.Medium, s.Difficulty())
	assert.NotEmpty(t, s.Level().Obstacles)
	assert.Equal(t, s.Level().StartPos, s.Ball().Pos)
	assert.InDelta(t, float64(layout.BallRadius), float64(s.Ball().Radius), 1e-6)
	assert.Equal(t, uint64(1), s.LevelSeq())
}

func TestSelectDifficultyUnknown(t *testing.T) {
	s := newTestSession(t)
	assert.Error(t, s.SelectDifficulty("nightmare"))
	assert.Equal(t, PhaseMenu, s.Phase())
}

func TestNewLevelRequiresDifficulty(t *testing.T) {
	s := newTestSession(t)
	assert.Error(t, s.NewLevel())

	require.NoError(t, s.SelectDifficulty(presets.Easy))
	require.NoError(t, s.NewLevel())
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, uint64(2), s.LevelSeq())
}

func TestRebuildSwapsObstaclesWholesale(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Easy))

	first := s.Level().Obstacles
	require.NoError(t, s.NewLevel())
	second := s.Level().Obstacles

	// The obstacle slice is replaced, never patched in place.
	assert.NotSame(t, &first[0], &second[0])
}

func TestTickIntegratesUnderGravity(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Easy))

	start := s.Ball().Pos
	for i := 0; i < 30; i++ {
		s.Tick(1.0/60.0, mathx.QuatIdentity())
	}
	// Under untilted gravity the ball settles onto the floor below its
	// spawn height and stays in its cell.
	assert.Less(t, float64(s.Ball().Pos.Y), float64(start.Y))
	assert.InDelta(t, float64(start.X), float64(s.Ball().Pos.X), 1e-3)
	assert.InDelta(t, float64(start.Z), float64(s.Ball().Pos.Z), 1e-3)
}

func TestWinClearedOnlyByReset(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Easy))

	// Teleport the ball onto the goal floor and tick once.
	goal := s.Level().Goal
	s.ball.Pos = mathx.V3(goal.Pos.X, goal.Pos.Y+layout.FloorThickness/2+layout.BallRadius, goal.Pos.Z)
	s.ball.Vel = mathx.Vec3{}
	s.Tick(1.0/120.0, mathx.QuatIdentity())
	require.True(t, s.Won())

	// Winning is sticky across further ticks.
	for i := 0; i < 10; i++ {
		s.Tick(1.0/60.0, mathx.QuatIdentity())
	}
	assert.True(t, s.Won())

	// A new level clears it.
	require.NoError(t, s.NewLevel())
	assert.False(t, s.Won())
}

func TestRestartKeepsDifficultyParameters(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Hard))

	s.Restart()
	assert.Equal(t, PhaseMenu, s.Phase())
	assert.Equal(t, presets.Hard, s.Difficulty())
	assert.False(t, s.Won())

	// Selecting again re-enters running with fresh state.
	require.NoError(t, s.SelectDifficulty(presets.Hard))
	assert.Equal(t, PhaseRunning, s.Phase())
}

func TestBallStaysInBoundsAcrossLevels(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectDifficulty(presets.Hard))

	tilt := mathx.QuatFromAxisAngle(mathx.V3(1, 0, 0), 0.4)
	for i := 0; i < 500; i++ {
		s.Tick(1.0/60.0, tilt)
		b := s.Ball()
		bounds := s.Level().Bounds
		require.LessOrEqual(t, float64(b.Pos.X), float64(bounds.LimitX)+1e-4)
		require.GreaterOrEqual(t, float64(b.Pos.Y), float64(bounds.BottomY)-1e-4)
	}
}

func TestVisualScaleFollowsDifficulty(t *testing.T) {
	s := newTestSession(t)
	assert.InDelta(t, 1.0, s.VisualScale(), 1e-6)

	require.NoError(t, s.SelectDifficulty(presets.Hard))
	assert.InDelta(t, 0.7, s.VisualScale(), 1e-6)
}
