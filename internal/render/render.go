// Package render is the presentation side of the game: it draws the rotating
// maze cube, ball, and goal marker in 3D, and the menu / win overlay in 2D.
// It consumes the simulation's obstacle list on every level rebuild and never
// feeds anything back into the core.
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"tiltmaze/internal/layout"
	"tiltmaze/internal/mathx"
	"tiltmaze/internal/maze"
	"tiltmaze/internal/sim"
)

const (
	pulseMin      = 0.8
	pulseMax      = 1.15
	pulseDuration = 0.6
	resetDuration = 0.45
	bannerFadeIn  = 0.35
)

// View holds the camera, the cached level geometry, and the overlay tweens.
type View struct {
	Camera rl.Camera3D

	levelSeq uint64
	floors   []rl.Vector3 // centers
	floorSz  []rl.Vector3
	walls    []rl.Vector3
	wallSz   []rl.Vector3
	shellSz  rl.Vector3

	pulse     *gween.Tween
	pulseUp   bool
	pulseVal  float32
	banner    *gween.Tween
	bannerVal float32
	wonSeen   bool

	reset      *gween.Tween
	resetPitch float32
	resetRoll  float32
}

// New returns a view with a fixed perspective camera looking at the cube.
func New() *View {
	v := &View{}
	v.Camera.Position = rl.NewVector3(5, 4.5, 7)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	v.pulse = gween.New(pulseMin, pulseMax, pulseDuration, ease.InOutQuad)
	v.pulseUp = true
	v.pulseVal = pulseMin
	return v
}

// TiltSetter is the part of the input controller the reset tween drives.
type TiltSetter interface {
	SetTilt(pitch, roll float32)
}

// StartReset begins easing the cube back upright from the given tilt.
func (v *View) StartReset(pitch, roll float32) {
	v.reset = gween.New(1, 0, resetDuration, ease.OutQuad)
	v.resetPitch = pitch
	v.resetRoll = roll
}

// Update advances the view's tweens. Call once per frame with the frame delta.
func (v *View) Update(dt float32, s *sim.Session, tilt TiltSetter) {
	// Goal marker pulse, ping-ponging between its bounds.
	val, done := v.pulse.Update(dt)
	v.pulseVal = val
	if done {
		if v.pulseUp {
			v.pulse = gween.New(pulseMax, pulseMin, pulseDuration, ease.InOutQuad)
		} else {
			v.pulse = gween.New(pulseMin, pulseMax, pulseDuration, ease.InOutQuad)
		}
		v.pulseUp = !v.pulseUp
	}

	// Win banner fade-in, armed on the frame the level is won.
	if s.Won() && !v.wonSeen {
		v.wonSeen = true
		v.banner = gween.New(0, 1, bannerFadeIn, ease.Linear)
	}
	if !s.Won() {
		v.wonSeen = false
		v.banner = nil
		v.bannerVal = 0
	}
	if v.banner != nil {
		v.bannerVal, _ = v.banner.Update(dt)
	}

	// Restart ease back to upright.
	if v.reset != nil {
		f, done := v.reset.Update(dt)
		tilt.SetTilt(v.resetPitch*f, v.resetRoll*f)
		if done {
			v.reset = nil
		}
	}

	v.syncLevel(s)
}

// syncLevel rebuilds the cached draw lists when the session has installed a
// new level. The obstacle list is read once per rebuild, not per frame.
func (v *View) syncLevel(s *sim.Session) {
	if s.LevelSeq() == v.levelSeq {
		return
	}
	v.levelSeq = s.LevelSeq()

	v.floors = v.floors[:0]
	v.floorSz = v.floorSz[:0]
	v.walls = v.walls[:0]
	v.wallSz = v.wallSz[:0]

	for _, o := range s.Level().Obstacles {
		center := rl.NewVector3(o.Center.X, o.Center.Y, o.Center.Z)
		size := rl.NewVector3(o.Half.X*2, o.Half.Y*2, o.Half.Z*2)
		if o.Half.Y == layout.FloorThickness/2 {
			v.floors = append(v.floors, center)
			v.floorSz = append(v.floorSz, size)
		} else {
			v.walls = append(v.walls, center)
			v.wallSz = append(v.wallSz, size)
		}
	}

	span := s.Level().Bounds.LimitX*2 + layout.BallRadius*2 + layout.WallThickness
	height := layout.FloorTopY(maze.LevelUpper) + layout.WallHeadroom -
		(layout.FloorTopY(maze.LevelLower) - layout.FloorThickness)
	v.shellSz = rl.NewVector3(span, height, span)
}

// Draw renders the 3D scene: the whole cube under the frame's rotation and
// visual scale, then ball and goal inside it.
func (v *View) Draw(s *sim.Session, orient mathx.Quat) {
	rl.BeginMode3D(v.Camera)

	rl.PushMatrix()
	axis, angle := orient.AxisAngle()
	if angle != 0 {
		rl.Rotatef(angle*180/math.Pi, axis.X, axis.Y, axis.Z)
	}
	scale := s.VisualScale()
	rl.Scalef(scale, scale, scale)

	if s.LevelSeq() > 0 {
		for i := range v.floors {
			rl.DrawCubeV(v.floors[i], v.floorSz[i], rl.NewColor(70, 80, 110, 255))
		}
		for i := range v.walls {
			rl.DrawCubeV(v.walls[i], v.wallSz[i], rl.NewColor(150, 130, 200, 255))
		}
		rl.DrawCubeWiresV(rl.NewVector3(0, (v.shellSz.Y/2)+layout.FloorTopY(maze.LevelLower)-layout.FloorThickness, 0), v.shellSz, rl.SkyBlue)

		ball := s.Ball()
		rl.DrawSphere(rl.NewVector3(ball.Pos.X, ball.Pos.Y, ball.Pos.Z), ball.Radius, rl.Gold)

		goal := s.Level().Goal
		r := goal.CaptureRadius * v.pulseVal
		rl.DrawSphereWires(rl.NewVector3(goal.Pos.X, goal.Pos.Y+layout.FloorThickness, goal.Pos.Z), r, 8, 8, rl.Lime)
	} else {
		// Menu with no level yet: an empty cube to drag-spin.
		rl.DrawCubeWiresV(rl.NewVector3(0, 0, 0), rl.NewVector3(3, 3, 3), rl.SkyBlue)
	}

	rl.PopMatrix()
	rl.EndMode3D()
}
