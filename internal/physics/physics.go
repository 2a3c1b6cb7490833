// Package physics advances the ball through the maze: semi-implicit Euler
// integration under a gravity vector re-expressed in the maze's rotating
// local frame, sub-stepped collision resolution against thin box obstacles,
// hard containment bounds, and the win test.
package physics

import (
	"math"

	"tiltmaze/internal/layout"
	"tiltmaze/internal/mathx"
)

// Ball is the simulated sphere. Owned by the session; mutated only inside
// Step, CheckWin, or an explicit reset.
type Ball struct {
	Pos    mathx.Vec3
	Vel    mathx.Vec3
	Radius float32
	Won    bool
}

// Tuning holds the integrator's numeric constants. They are adjustable via
// presets but held fixed within a session for reproducible behavior.
type Tuning struct {
	Gravity       float32 `yaml:"gravity"`         // world gravity magnitude, length-units/s²
	Restitution   float32 `yaml:"restitution"`     // fraction of inbound velocity reflected on impact
	Damping       float32 `yaml:"damping"`         // per-tick uniform velocity damping factor
	MaxFrameDelta float32 `yaml:"max_frame_delta"` // frame deltas above this are clamped (tab stalls)
	MaxSubstep    float32 `yaml:"max_substep"`     // upper bound on one integration sub-step
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       8.0,
		Restitution:   0.35,
		Damping:       0.995,
		MaxFrameDelta: 1.0 / 30.0,
		MaxSubstep:    1.0 / 120.0,
	}
}

// Contact reports one resolved collision during a Step.
type Contact struct {
	Obstacle int // index into the obstacle slice, -1 for containment bounds
	Normal   mathx.Vec3
	Speed    float32 // inbound speed along the normal before reflection
}

// worldDown is the fixed world-space gravity direction; tilting the cube
// changes only how it maps into the maze frame.
var worldDown = mathx.V3(0, -1, 0)

// Step advances the ball by dt seconds. orient is the maze frame's current
// rotation; gravity is transformed by its inverse so "down" follows the
// player's tilt. The frame delta is clamped, then divided into even
// sub-steps no longer than MaxSubstep: obstacle panels are thin, and a full
// frame step at speed can tunnel straight through one.
func Step(ball *Ball, dt float32, orient mathx.Quat, obstacles []layout.Obstacle, bounds layout.Bounds, tun Tuning) []Contact {
	if dt <= 0 {
		return nil
	}
	if dt > tun.MaxFrameDelta {
		dt = tun.MaxFrameDelta
	}

	steps := int(math.Ceil(float64(dt / tun.MaxSubstep)))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float32(steps)

	gLocal := orient.RotateInverse(worldDown.Scale(tun.Gravity))

	var contacts []Contact
	for s := 0; s < steps; s++ {
		// Semi-implicit Euler: velocity first, then position.
		ball.Vel = ball.Vel.Add(gLocal.Scale(sub))
		ball.Pos = ball.Pos.Add(ball.Vel.Scale(sub))

		contacts = clampToBounds(ball, bounds, tun.Restitution, contacts)

		for i := range obstacles {
			if c, hit := resolveSphereBox(ball, &obstacles[i], tun.Restitution); hit {
				c.Obstacle = i
				contacts = append(contacts, c)
			}
		}

		// A wall push can shove the ball past the shell; re-clamp.
		contacts = clampToBounds(ball, bounds, tun.Restitution, contacts)
	}

	// Damping bleeds energy once per full tick, not per sub-step, so the
	// effective decay does not depend on the sub-step count.
	ball.Vel = ball.Vel.Scale(tun.Damping)

	return contacts
}

// clampToBounds keeps the ball's center inside the containment limits,
// reflecting any velocity component still pointing outward on a clamped axis.
func clampToBounds(ball *Ball, b layout.Bounds, restitution float32, contacts []Contact) []Contact {
	if ball.Pos.X > b.LimitX {
		ball.Pos.X = b.LimitX
		if ball.Vel.X > 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(-1, 0, 0), Speed: ball.Vel.X})
			ball.Vel.X *= -restitution
		}
	} else if ball.Pos.X < -b.LimitX {
		ball.Pos.X = -b.LimitX
		if ball.Vel.X < 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(1, 0, 0), Speed: -ball.Vel.X})
			ball.Vel.X *= -restitution
		}
	}

	if ball.Pos.Z > b.LimitZ {
		ball.Pos.Z = b.LimitZ
		if ball.Vel.Z > 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(0, 0, -1), Speed: ball.Vel.Z})
			ball.Vel.Z *= -restitution
		}
	} else if ball.Pos.Z < -b.LimitZ {
		ball.Pos.Z = -b.LimitZ
		if ball.Vel.Z < 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(0, 0, 1), Speed: -ball.Vel.Z})
			ball.Vel.Z *= -restitution
		}
	}

	if ball.Pos.Y > b.TopY {
		ball.Pos.Y = b.TopY
		if ball.Vel.Y > 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(0, -1, 0), Speed: ball.Vel.Y})
			ball.Vel.Y *= -restitution
		}
	} else if ball.Pos.Y < b.BottomY {
		ball.Pos.Y = b.BottomY
		if ball.Vel.Y < 0 {
			contacts = append(contacts, Contact{Obstacle: -1, Normal: mathx.V3(0, 1, 0), Speed: -ball.Vel.Y})
			ball.Vel.Y *= -restitution
		}
	}

	return contacts
}

// resolveSphereBox resolves the ball against one axis-aligned box. The ball
// is pushed out along the contact normal by the penetration depth; the
// inbound velocity component along the normal is reflected with restitution.
func resolveSphereBox(ball *Ball, o *layout.Obstacle, restitution float32) (Contact, bool) {
	local := ball.Pos.Sub(o.Center)
	closest := mathx.V3(
		clamp(local.X, -o.Half.X, o.Half.X),
		clamp(local.Y, -o.Half.Y, o.Half.Y),
		clamp(local.Z, -o.Half.Z, o.Half.Z),
	)
	delta := local.Sub(closest)
	distSq := delta.LengthSq()

	var normal mathx.Vec3
	var depth float32

	if distSq > 0 {
		if distSq >= ball.Radius*ball.Radius {
			return Contact{}, false
		}
		dist := float32(math.Sqrt(float64(distSq)))
		normal = delta.Scale(1 / dist)
		depth = ball.Radius - dist
	} else {
		// Center inside the box (or exactly on its surface): the generic
		// normal would divide by zero. Push out through the nearest face.
		normal, depth = nearestFace(local, o.Half)
		depth += ball.Radius
	}

	ball.Pos = ball.Pos.Add(normal.Scale(depth))

	vn := ball.Vel.Dot(normal)
	if vn < 0 {
		ball.Vel = ball.Vel.Sub(normal.Scale((1 + restitution) * vn))
		return Contact{Normal: normal, Speed: -vn}, true
	}
	return Contact{Normal: normal}, true
}

// nearestFace picks the axis with the smallest distance to a face and returns
// the outward normal along it plus that distance.
func nearestFace(local, half mathx.Vec3) (mathx.Vec3, float32) {
	dx := half.X - abs(local.X)
	dy := half.Y - abs(local.Y)
	dz := half.Z - abs(local.Z)

	switch {
	case dx <= dy && dx <= dz:
		return mathx.V3(sign(local.X), 0, 0), dx
	case dy <= dz:
		return mathx.V3(0, sign(local.Y), 0), dy
	default:
		return mathx.V3(0, 0, sign(local.Z)), dz
	}
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

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
