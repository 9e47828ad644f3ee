package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center  mgl32.Vec3
	extents mgl32.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl32.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}
func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Contains(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl32.Vec3 {
	return a.extents
}

func (a AABB) MovedTo(center mgl32.Vec3) AABB {
	return NewAABB(center, a.extents)
}

// IntersectsRay is a slab test. direction must be normalized, the returned
// distance is along the ray and 0 when the origin is inside the box.
func (a AABB) IntersectsRay(origin, direction mgl32.Vec3, maxDistance float32) (bool, float32) {
	tMin := float32(0)
	tMax := maxDistance
	minVal := a.Min()
	maxVal := a.Max()
	for axis := 0; axis < 3; axis++ {
		if abs(direction[axis]) < epsilon {
			if !InRange(origin[axis], minVal[axis], maxVal[axis]) {
				return false, 0
			}
			continue
		}
		inverse := 1 / direction[axis]
		t1 := (minVal[axis] - origin[axis]) * inverse
		t2 := (maxVal[axis] - origin[axis]) * inverse
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = Max(tMin, t1)
		tMax = Min(tMax, t2)
		if tMin > tMax {
			return false, 0
		}
	}
	return true, tMin
}

func InRange(x, min, max float32) bool {
	return x >= min && x <= max
}

func LineToPlaneIntersection(p, u, v, n mgl32.Vec3) float32 {
	NdotU := n.Dot(u)
	if NdotU == 0 {
		return math.MaxFloat32
	}
	return n.Dot(v.Sub(p)) / NdotU
}
