// Package input maps pointer drags to cube rotation. It owns the orientation
// quaternion the physics integrator reads each tick.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tiltmaze/internal/mathx"
)

const (
	// dragSensitivity converts pixels of pointer travel to radians of tilt.
	dragSensitivity = 0.006
	// idleSpinRate is the constant slow spin about the world Y axis, rad/s.
	idleSpinRate = 0.25
	// maxTilt limits how far a drag can tip the cube on each horizontal axis.
	maxTilt = 0.9
)

// Controller accumulates pointer-drag tilt and idle spin into one orientation.
// Tilt (pitch/roll) is what steers the ball; the yaw spin is cosmetic and
// runs even while the cube is untouched.
type Controller struct {
	yaw   float32 // rotation about world Y, accumulates idle spin + horizontal drag
	pitch float32 // tilt about world X, from vertical drag
	roll  float32 // tilt about world Z, from horizontal drag while dragging
}

// New returns a controller with the cube upright.
func New() *Controller {
	return &Controller{}
}

// Update polls the mouse and advances the idle spin. Call once per frame
// before ticking the simulation.
func (c *Controller) Update(dt float32) {
	c.yaw += idleSpinRate * dt

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		c.pitch = clamp(c.pitch+d.Y*dragSensitivity, -maxTilt, maxTilt)
		c.roll = clamp(c.roll-d.X*dragSensitivity, -maxTilt, maxTilt)
	}
}

// Current returns the maze frame's rotation: yaw about Y applied over the
// drag tilt, so gravity seen from inside the maze follows the tilt.
func (c *Controller) Current() mathx.Quat {
	qYaw := mathx.QuatFromAxisAngle(mathx.V3(0, 1, 0), c.yaw)
	qPitch := mathx.QuatFromAxisAngle(mathx.V3(1, 0, 0), c.pitch)
	qRoll := mathx.QuatFromAxisAngle(mathx.V3(0, 0, 1), c.roll)
	return qYaw.Mul(qPitch).Mul(qRoll).Normalize()
}

// Tilt returns the current pitch and roll, for the reset tween.
func (c *Controller) Tilt() (pitch, roll float32) {
	return c.pitch, c.roll
}

// SetTilt overrides pitch and roll, used while the reset tween eases the cube
// back upright.
func (c *Controller) SetTilt(pitch, roll float32) {
	c.pitch = pitch
	c.roll = roll
}

// Reset snaps the cube upright and stops any accumulated tilt. The idle spin
// phase is kept so the menu cube doesn't visibly jump.
func (c *Controller) Reset() {
	c.pitch = 0
	c.roll = 0
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
