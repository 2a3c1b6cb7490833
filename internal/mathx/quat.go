package mathx

import "math"

// Quat is a rotation quaternion (x, y, z imaginary parts, w real part).
// Only unit quaternions represent valid orientations; mutating code should
// renormalize after long chains of Mul to keep drift down.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	n := axis.Normalize()
	if n == (Vec3{}) {
		return QuatIdentity()
	}
	half := float64(angle) * 0.5
	s := float32(math.Sin(half))
	return Quat{n.X * s, n.Y * s, n.Z * s, float32(math.Cos(half))}
}

// Mul returns the composition q * r: applying r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Normalize returns q scaled to unit length, or identity if q is degenerate.
func (q Quat) Normalize() Quat {
	mag := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if mag == 0 {
		return QuatIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Rotate applies the rotation to v: world = q.Rotate(local).
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(u × v) + 2(u × (u × v)), u = (X, Y, Z)
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotateInverse applies the inverse rotation to v. Used to re-express a fixed
// world-space vector (gravity) in the frame q orients: local = q.RotateInverse(world).
func (q Quat) RotateInverse(v Vec3) Vec3 {
	return q.Conjugate().Rotate(v)
}

// AxisAngle returns an axis/angle decomposition of the rotation. The axis is
// zero when q is the identity.
func (q Quat) AxisAngle() (Vec3, float32) {
	n := q.Normalize()
	w := n.W
	if w > 1 {
		w = 1
	}
	if w < -1 {
		w = -1
	}
	angle := 2 * float32(math.Acos(float64(w)))
	s := float32(math.Sqrt(float64(1 - w*w)))
	if s < 1e-6 {
		return Vec3{}, 0
	}
	inv := 1.0 / s
	return Vec3{n.X * inv, n.Y * inv, n.Z * inv}, angle
}
