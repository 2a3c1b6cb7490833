// Package mathx provides the small 3D math toolbox the simulation needs:
// float32 vectors and unit quaternions. Kept free of rendering imports so the
// physics and maze packages stay plain Go.
package mathx

import "math"

// Vec3 is a 3D vector in maze-local or world space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// LengthSq returns the squared magnitude. Cheaper than Length when only
// comparing distances.
func (a Vec3) LengthSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Length returns the magnitude.
func (a Vec3) Length() float32 {
	return float32(math.Sqrt(float64(a.LengthSq())))
}

// Normalize returns the unit vector in a's direction, or the zero vector if a
// has zero magnitude.
func (a Vec3) Normalize() Vec3 {
	mag := a.Length()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}
