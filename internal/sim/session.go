// Package sim owns the game session: the menu/running state machine, level
// rebuilds, and the per-tick pipeline of integration plus win detection. All
// simulation state lives on the Session and is mutated only by the main tick
// or the explicit session controls, so no locking is needed.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"tiltmaze/internal/layout"
	"tiltmaze/internal/mathx"
	"tiltmaze/internal/maze"
	"tiltmaze/internal/physics"
	"tiltmaze/internal/presets"
)

// Phase is the session's external state: Menu before a difficulty is chosen
// (no integration, static frame) or Running (integration every tick).
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
)

// Session is the explicit simulation context: ball, goal, obstacle set, and
// phase. Created once per process; levels are regenerated in place.
type Session struct {
	cfg presets.Config
	log *logrus.Logger
	rng *rand.Rand

	phase      Phase
	difficulty presets.Difficulty
	grid       layout.Grid
	mazeLayout maze.Layout
	level      layout.Result
	ball       physics.Ball

	// levelSeq increments on every rebuild; the presentation sink compares
	// it to know when to rebuild its geometry.
	levelSeq  uint64
	wonLogged bool
}

// New creates a session in the menu phase. seed controls maze generation;
// 0 uses a time-based seed.
func New(cfg presets.Config, log *logrus.Logger, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:   cfg,
		log:   log,
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhaseMenu,
	}, nil
}

// SelectDifficulty sets the grid size from the named preset, regenerates the
// level, resets ball and goal, and enters the running phase.
func (s *Session) SelectDifficulty(d presets.Difficulty) error {
	p, ok := s.cfg.Difficulties[d]
	if !ok {
		return fmt.Errorf("sim: unknown difficulty %q", d)
	}
	s.difficulty = d
	s.grid = layout.NewGrid(p.CellsPerSide)
	if err := s.rebuild(); err != nil {
		return err
	}
	s.phase = PhaseRunning
	s.log.WithFields(logrus.Fields{
		"difficulty": d,
		"cells":      p.CellsPerSide,
	}).Info("difficulty selected")
	return nil
}

// NewLevel regenerates a level with the current difficulty, resets ball and
// goal, and stays running. Requires a prior SelectDifficulty.
func (s *Session) NewLevel() error {
	if s.difficulty == "" {
		return fmt.Errorf("sim: no difficulty selected")
	}
	if err := s.rebuild(); err != nil {
		return err
	}
	s.phase = PhaseRunning
	return nil
}

// Restart returns to the menu. The last difficulty parameters are kept until
// reselected; the ball and win flag reset so a stale frame shows nothing odd.
func (s *Session) Restart() {
	s.phase = PhaseMenu
	s.ball = physics.Ball{Pos: s.level.StartPos, Radius: layout.BallRadius}
	s.wonLogged = false
	s.log.Info("restarted to menu")
}

// rebuild runs generation and layout building synchronously and installs the
// new Result in a single swap: no tick can ever observe a partial obstacle
// set. The previous Result is discarded whole.
func (s *Session) rebuild() error {
	ml, err := maze.Generate(s.grid.CellsPerSide, s.rng)
	if err != nil {
		return fmt.Errorf("sim: generate level: %w", err)
	}
	s.mazeLayout = ml
	s.level = layout.Build(ml, s.grid)
	s.ball = physics.Ball{Pos: s.level.StartPos, Radius: layout.BallRadius}
	s.wonLogged = false
	s.levelSeq++

	s.log.WithFields(logrus.Fields{
		"level":     s.levelSeq,
		"cells":     s.grid.CellsPerSide,
		"obstacles": len(s.level.Obstacles),
		"drop":      ml.Drop != nil,
	}).Info("level generated")
	return nil
}

// Tick advances the simulation by dt seconds with the maze frame at the given
// orientation. In the menu phase it does nothing. Returns any contacts the
// integrator resolved, for impact feedback.
func (s *Session) Tick(dt float32, orient mathx.Quat) []physics.Contact {
	if s.phase != PhaseRunning {
		return nil
	}

	contacts := physics.Step(&s.ball, dt, orient, s.level.Obstacles, s.level.Bounds, s.cfg.Physics)

	if physics.CheckWin(&s.ball, s.level.Goal) && !s.wonLogged {
		s.wonLogged = true
		s.log.WithField("level", s.levelSeq).Info("goal reached")
	}
	return contacts
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// Difficulty returns the last selected difficulty ("" before any selection).
func (s *Session) Difficulty() presets.Difficulty { return s.difficulty }

// VisualScale returns the render scale of the current difficulty, 1 if none
// has been selected yet.
func (s *Session) VisualScale() float32 {
	if p, ok := s.cfg.Difficulties[s.difficulty]; ok {
		return p.VisualScale
	}
	return 1
}

// Ball returns a copy of the ball's current state.
func (s *Session) Ball() physics.Ball { return s.ball }

// Won reports whether the current level has been completed.
func (s *Session) Won() bool { return s.ball.Won }

// Level returns the current level's placed geometry. The slice is replaced
// wholesale on rebuild, never mutated; callers may hold it for a frame.
func (s *Session) Level() layout.Result { return s.level }

// Maze returns the current abstract maze layout.
func (s *Session) Maze() maze.Layout { return s.mazeLayout }

// LevelSeq returns the rebuild counter; it changes whenever Level does.
func (s *Session) LevelSeq() uint64 { return s.levelSeq }

// Tuning returns the session's fixed physics constants.
func (s *Session) Tuning() physics.Tuning { return s.cfg.Physics }
