package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var WorldUp = mgl32.Vec3{0, 1, 0}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Clamp32(value, min, max float32) float32 {
	return Min(Max(value, min), max)
}

func DistanceSq(one, two mgl32.Vec3) float32 {
	return one.Sub(two).LenSqr()
}

// RotateY rotates v around the world up axis by angle radians.
func RotateY(angle float32, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.QuatRotate(angle, WorldUp).Rotate(v)
}

// LookRotation returns the orientation whose forward (-Z) points along direction.
// A direction parallel to up has no defined roll, it falls back to the shortest arc from -Z.
func LookRotation(direction, up mgl32.Vec3) mgl32.Quat {
	if direction.Cross(up).LenSqr() < epsilon {
		return mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, direction.Normalize())
	}
	return mgl32.QuatLookAtV(mgl32.Vec3{}, direction, up).Inverse()
}

// SlerpClamped turns along the shorter arc and never overshoots the target orientation.
func SlerpClamped(from, to mgl32.Quat, amount float32) mgl32.Quat {
	// q and -q are the same rotation
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	amount = Clamp32(amount, 0, 1)
	if amount == 0 {
		return from
	}
	if amount == 1 {
		return to
	}
	return mgl32.QuatSlerp(from, to, amount).Normalize()
}
