package client

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/memmaker/unitcommand/game"
)

// GlfwInput polls a glfw window once per tick. Must be called on the main thread.
type GlfwInput struct {
	window *glfw.Window
	camera *util.TopDownCamera
	edges  game.ButtonEdges
}

func NewGlfwInput(window *glfw.Window, camera *util.TopDownCamera) *GlfwInput {
	return &GlfwInput{
		window: window,
		camera: camera,
	}
}

func (a *GlfwInput) isMouseInWindow(xpos, ypos float64) bool {
	width, height := a.camera.GetWindowSize()
	return xpos >= 0 && xpos < float64(width) && ypos >= 0 && ypos < float64(height)
}

// Poll converts glfw's top-left cursor origin to the bottom-left screen space used by the camera.
func (a *GlfwInput) Poll() game.InputFrame {
	xpos, ypos := a.window.GetCursorPos()
	_, height := a.camera.GetWindowSize()
	cursor := mgl32.Vec2{float32(xpos), float32(height) - float32(ypos)}

	primaryDown := a.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	secondaryDown := a.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	if !a.isMouseInWindow(xpos, ypos) {
		// a drag may leave the window, a move order may not
		secondaryDown = false
	}

	frame := a.edges.Update(primaryDown, secondaryDown, cursor)
	frame.MouseWorldPosition, frame.HasMouseWorldPosition = a.camera.GroundPoint(cursor)
	return frame
}

func (a *GlfwInput) PollCameraMovement() (bool, [2]int) {
	cameraMoved := false
	movementVector := [2]int{0, 0}
	if a.window.GetKey(glfw.KeyW) == glfw.Press {
		movementVector[1] = 1
		cameraMoved = true
	} else if a.window.GetKey(glfw.KeyS) == glfw.Press {
		movementVector[1] = -1
		cameraMoved = true
	}
	if a.window.GetKey(glfw.KeyA) == glfw.Press {
		movementVector[0] = -1
		cameraMoved = true
	} else if a.window.GetKey(glfw.KeyD) == glfw.Press {
		movementVector[0] = 1
		cameraMoved = true
	}
	return cameraMoved, movementVector
}

func (a *GlfwInput) ShouldQuit() bool {
	return a.window.ShouldClose() || a.window.GetKey(glfw.KeyEscape) == glfw.Press
}
