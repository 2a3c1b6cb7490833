package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func vecNear(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps)
	assert.InDelta(t, want.Y, got.Y, eps)
	assert.InDelta(t, want.Z, got.Z, eps)
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-1, 0.5, 2)

	vecNear(t, V3(0, 2.5, 5), a.Add(b))
	vecNear(t, V3(2, 1.5, 1), a.Sub(b))
	vecNear(t, V3(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 6.0, a.Dot(b), eps)
	assert.InDelta(t, 14.0, a.LengthSq(), eps)
	assert.InDelta(t, math.Sqrt(14), a.Length(), eps)
}

func TestVec3NormalizeZeroGuard(t *testing.T) {
	// Zero-length input must not divide by zero.
	vecNear(t, Vec3{}, Vec3{}.Normalize())

	n := V3(0, 0, 5).Normalize()
	vecNear(t, V3(0, 0, 1), n)
}

func TestQuatRotateRoundTrip(t *testing.T) {
	q := QuatFromAxisAngle(V3(0, 1, 0), math.Pi/2)
	v := V3(1, 0, 0)

	// +90° about Y sends +X to -Z.
	rotated := q.Rotate(v)
	vecNear(t, V3(0, 0, -1), rotated)

	// Inverse rotation must recover the original vector.
	vecNear(t, v, q.RotateInverse(rotated))
}

func TestQuatRotateInverseGravity(t *testing.T) {
	// Tilting the frame 30° about Z makes world "down" acquire a local X
	// component, which is what steers the ball.
	tilt := QuatFromAxisAngle(V3(0, 0, 1), math.Pi/6)
	down := V3(0, -1, 0)

	local := tilt.RotateInverse(down)
	assert.InDelta(t, -math.Sin(math.Pi/6), local.X, eps)
	assert.InDelta(t, -math.Cos(math.Pi/6), local.Y, eps)
	assert.InDelta(t, 0, local.Z, eps)
}

func TestQuatMulComposition(t *testing.T) {
	a := QuatFromAxisAngle(V3(0, 1, 0), math.Pi/2)
	b := QuatFromAxisAngle(V3(1, 0, 0), math.Pi/2)

	// a.Mul(b) applies b first, then a.
	v := V3(0, 0, 1)
	composed := a.Mul(b).Rotate(v)
	sequential := a.Rotate(b.Rotate(v))
	vecNear(t, sequential, composed)
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	require.Equal(t, QuatIdentity(), Quat{}.Normalize())

	q := Quat{0, 2, 0, 0}.Normalize()
	assert.InDelta(t, 1.0, q.Y, eps)
}

func TestQuatFromAxisAngleZeroAxis(t *testing.T) {
	assert.Equal(t, QuatIdentity(), QuatFromAxisAngle(Vec3{}, 1.5))
}

func TestAxisAngleDecomposition(t *testing.T) {
	axis, angle := QuatFromAxisAngle(V3(0, 1, 0), 0.8).AxisAngle()
	vecNear(t, V3(0, 1, 0), axis)
	assert.InDelta(t, 0.8, angle, eps)

	axis, angle = QuatIdentity().AxisAngle()
	assert.Equal(t, Vec3{}, axis)
	assert.Zero(t, angle)
}
