package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the position and heading of a unit in world space.
type Transform struct {
	translation mgl32.Vec3
	rotation    mgl32.Quat
}

func NewDefaultTransform() *Transform {
	return &Transform{
		translation: mgl32.Vec3{0, 0, 0},
		rotation:    mgl32.QuatIdent(),
	}
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat) *Transform {
	return &Transform{
		translation: position,
		rotation:    rotation,
	}
}

func (t *Transform) GetPosition() mgl32.Vec3 {
	return t.translation
}
func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.translation = position
}

func (t *Transform) GetRotation() mgl32.Quat {
	return t.rotation
}
func (t *Transform) SetRotation(rotation mgl32.Quat) {
	t.rotation = rotation
}

func (t *Transform) GetForward() mgl32.Vec3 {
	return t.rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) SetForward(direction mgl32.Vec3) {
	t.rotation = mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, direction)
}
