package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetPosition() mgl32.Vec3
	WorldToScreen(world mgl32.Vec3) (mgl32.Vec2, bool)
	ScreenPointToRay(screen mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3)
}

// TopDownCamera is a perspective camera looking down at a target on the
// ground plane. Screen coordinates have their origin in the lower left corner.
type TopDownCamera struct {
	*Transform
	lookTarget   mgl32.Vec3
	camOffset    mgl32.Vec3
	fieldOfView  float32
	nearPlane    float32
	farPlane     float32
	windowWidth  int
	windowHeight int
}

func NewTopDownCamera(position, lookTarget mgl32.Vec3, windowWidth, windowHeight int) *TopDownCamera {
	c := &TopDownCamera{
		Transform:    NewDefaultTransform(),
		lookTarget:   lookTarget,
		camOffset:    position.Sub(lookTarget),
		fieldOfView:  45,
		nearPlane:    0.1,
		farPlane:     10000,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	c.updateTransform()
	return c
}

func (c *TopDownCamera) SetFieldOfView(degrees float32) {
	c.fieldOfView = degrees
}

func (c *TopDownCamera) GetWindowSize() (int, int) {
	return c.windowWidth, c.windowHeight
}

// SetWindowSize follows a resized window so projection and picking keep matching the cursor.
func (c *TopDownCamera) SetWindowSize(width, height int) {
	c.windowWidth = width
	c.windowHeight = height
}

func (c *TopDownCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.GetPosition(), c.lookTarget, c.up())
}

func (c *TopDownCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(mgl32.DegToRad(c.fieldOfView), aspect, c.nearPlane, c.farPlane)
}

func (c *TopDownCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// WorldToScreen reports false for points behind the camera.
func (c *TopDownCamera) WorldToScreen(world mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := c.GetProjectionViewMatrix().Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	win := mgl32.Project(world, c.GetViewMatrix(), c.GetProjectionMatrix(), 0, 0, c.windowWidth, c.windowHeight)
	return mgl32.Vec2{win.X(), win.Y()}, true
}

// ScreenPointToRay returns the ray origin on the near plane and its normalized direction.
func (c *TopDownCamera) ScreenPointToRay(screen mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3) {
	rayStart, rayDirection, err := c.unprojectRay(screen)
	if err != nil {
		LogSystemError(fmt.Sprintf("[Camera] %v", err))
		return c.GetPosition(), c.lookTarget.Sub(c.GetPosition()).Normalize()
	}
	return rayStart, rayDirection
}

func (c *TopDownCamera) unprojectRay(screen mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3, error) {
	view := c.GetViewMatrix()
	proj := c.GetProjectionMatrix()
	nearWorldPos, err := mgl32.UnProject(mgl32.Vec3{screen.X(), screen.Y(), 0}, view, proj, 0, 0, c.windowWidth, c.windowHeight)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, errors.Wrapf(err, "unproject near point %v", screen)
	}
	farWorldPos, err := mgl32.UnProject(mgl32.Vec3{screen.X(), screen.Y(), 1}, view, proj, 0, 0, c.windowWidth, c.windowHeight)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, errors.Wrapf(err, "unproject far point %v", screen)
	}
	return nearWorldPos, farWorldPos.Sub(nearWorldPos).Normalize(), nil
}

// GroundPoint intersects the picking ray with the y = 0 plane.
func (c *TopDownCamera) GroundPoint(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	origin, direction := c.ScreenPointToRay(screen)
	s := LineToPlaneIntersection(origin, direction, mgl32.Vec3{}, WorldUp)
	if s < 0 || s == math.MaxFloat32 {
		return mgl32.Vec3{}, false
	}
	hit := origin.Add(direction.Mul(s))
	hit[1] = 0
	return hit, true
}

func (c *TopDownCamera) MoveInDirection(delta float32, dir [2]int) {
	scrollSpeed := float32(10.0)
	forwards := c.Transform.GetForward()
	forwardOnPlane := mgl32.Vec3{forwards.X(), 0, forwards.Z()}
	if forwardOnPlane.LenSqr() < epsilon {
		forwardOnPlane = mgl32.Vec3{0, 0, -1}
	}
	forwardOnPlane = forwardOnPlane.Normalize()
	right := forwardOnPlane.Cross(WorldUp).Normalize()
	moveBy := right.Mul(float32(dir[0]) * delta * scrollSpeed).Add(forwardOnPlane.Mul(float32(dir[1]) * delta * scrollSpeed))

	c.lookTarget = c.lookTarget.Add(moveBy)
	c.updateTransform()
}

func (c *TopDownCamera) CenterOn(targetPos mgl32.Vec3) {
	c.lookTarget = targetPos
	c.updateTransform()
}

func (c *TopDownCamera) up() mgl32.Vec3 {
	lookDirection := c.lookTarget.Sub(c.GetPosition()).Normalize()
	right := lookDirection.Cross(WorldUp)
	if right.LenSqr() < epsilon {
		// looking straight down, screen up is world -Z
		return mgl32.Vec3{0, 0, -1}
	}
	return right.Cross(lookDirection).Normalize()
}

func (c *TopDownCamera) updateTransform() {
	c.Transform.SetPosition(c.lookTarget.Add(c.camOffset))
	c.Transform.SetRotation(LookRotation(c.lookTarget.Sub(c.GetPosition()), c.up()))
}

func (c *TopDownCamera) DebugString() string {
	return fmt.Sprintf("CameraPos: %v\nLookTarget: %v\nFOV: %0.2f\n", c.GetPosition(), c.lookTarget, c.fieldOfView)
}
